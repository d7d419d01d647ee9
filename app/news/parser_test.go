package news

import (
	"testing"
	"time"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>BackOffice Blog</title>
    <link>https://blog.example.com</link>
    <description>News</description>
    <item>
      <title>Tiers payant : ce qui change</title>
      <link>https://blog.example.com/tiers-payant</link>
      <description><![CDATA[<p>Le <strong>tiers payant</strong>   évolue.</p>]]></description>
      <pubDate>Tue, 02 Jan 2024 10:00:00 GMT</pubDate>
      <media:thumbnail url="https://blog.example.com/thumb1.png" />
    </item>
    <item>
      <title>Second article</title>
      <link>https://blog.example.com/second</link>
      <description>Plain description</description>
      <pubDate>Thu, 15 Aug 2024 08:30:00 GMT</pubDate>
      <media:content url="https://blog.example.com/content2.jpg" medium="image" />
    </item>
    <item>
      <title>Third article</title>
      <link>https://blog.example.com/third</link>
      <description>No image here</description>
      <pubDate>Fri, 01 Mar 2024 08:30:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestParseRSS2(t *testing.T) {
	parser := NewParser()
	items, err := parser.Run([]byte(sampleRSS))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got: %d", len(items))
	}

	first := items[0]
	if first.Title != "Tiers payant : ce qui change" {
		t.Errorf("Unexpected title: %s", first.Title)
	}
	if first.Link != "https://blog.example.com/tiers-payant" {
		t.Errorf("Unexpected link: %s", first.Link)
	}
	if first.Description != "Le tiers payant évolue." {
		t.Errorf("Expected markup to be stripped, got: %q", first.Description)
	}
	if first.ThumbnailURL != "https://blog.example.com/thumb1.png" {
		t.Errorf("Expected media:thumbnail URL, got: %s", first.ThumbnailURL)
	}
	expected := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	if !first.PublishedAt.Equal(expected) {
		t.Errorf("Expected published %v, got %v", expected, first.PublishedAt)
	}

	if items[1].ThumbnailURL != "https://blog.example.com/content2.jpg" {
		t.Errorf("Expected media:content URL, got: %s", items[1].ThumbnailURL)
	}
	if items[2].ThumbnailURL != "" {
		t.Errorf("Expected no thumbnail, got: %s", items[2].ThumbnailURL)
	}
}

func TestParseAtom(t *testing.T) {
	atomData := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Test Atom Feed</title>
  <id>urn:uuid:1234567890</id>
  <updated>2023-07-03T12:00:00Z</updated>
  <entry>
    <title>Test Entry</title>
    <link href="https://example.com/entry1"/>
    <id>urn:uuid:entry-1</id>
    <updated>2023-07-03T10:00:00Z</updated>
    <summary>Entry summary</summary>
  </entry>
</feed>`

	items, err := NewParser().Run([]byte(atomData))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got: %d", len(items))
	}
	if items[0].Link != "https://example.com/entry1" {
		t.Errorf("Unexpected link: %s", items[0].Link)
	}
	if items[0].PublishedAt.IsZero() {
		t.Error("Expected updated date to be used as publication date")
	}
}

func TestParseInvalidFeed(t *testing.T) {
	_, err := NewParser().Run([]byte("<html><body>not a feed</body></html>"))
	if err == nil {
		t.Error("Expected error for invalid feed")
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"<p>Hello <em>world</em></p>\n<p>again</p>", "Hello world again"},
		{"  spaced   out  ", "spaced out"},
	}

	for _, tt := range tests {
		if got := plainText(tt.input); got != tt.expected {
			t.Errorf("plainText(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
