package pages

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}

var testTemplates = map[string]string{
	"_header.html":  `{{define "header"}}<title>{{.Meta.Title}}</title>{{end}}`,
	"index.html":    `{{template "header" .}}home`,
	"404.html":      `{{template "header" .}}missing`,
	"solution.html": `{{template "header" .}}solution`,
}

func TestRendererLookup(t *testing.T) {
	renderer, err := NewRenderer(writeTemplates(t, testTemplates), nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, page := range []string{"index", "solution", "404"} {
		name, err := renderer.Lookup(page)
		if err != nil {
			t.Errorf("Expected %s to be found, got: %v", page, err)
		}
		if name != page+".html" {
			t.Errorf("Expected template %s.html, got %s", page, name)
		}
	}

	for _, page := range []string{"", "missing", "_header", "index.html", "../index", ".hidden"} {
		if _, err := renderer.Lookup(page); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound for %q, got: %v", page, err)
		}
	}

	if renderer.Count() < 4 {
		t.Errorf("Expected at least 4 templates, got %d", renderer.Count())
	}
}

func TestRendererRequiresIndexAndNotFound(t *testing.T) {
	dir := writeTemplates(t, map[string]string{"index.html": "home"})
	if _, err := NewRenderer(dir, nil); err == nil {
		t.Error("Expected error when 404.html is missing")
	}

	if _, err := NewRenderer(t.TempDir(), nil); err == nil {
		t.Error("Expected error for a directory without templates")
	}
}

func TestLoadSiteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	content := `title: BackOffice
pages:
  index:
    title: La gestion du tiers payant
    description: Externalisez votre tiers payant
  solution:
    description: Notre solution
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write site config: %v", err)
	}

	site, err := LoadSiteConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if meta := site.Meta("index"); meta.Title != "La gestion du tiers payant" || meta.Description != "Externalisez votre tiers payant" {
		t.Errorf("Unexpected index metadata: %+v", meta)
	}
	if meta := site.Meta("solution"); meta.Title != "BackOffice" {
		t.Errorf("Expected site title fallback, got %q", meta.Title)
	}
	if meta := site.Meta("unknown"); meta.Title != "BackOffice" || meta.Description != "" {
		t.Errorf("Unexpected metadata for unknown page: %+v", meta)
	}
}

func TestLoadSiteConfigMissingFile(t *testing.T) {
	site, err := LoadSiteConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got: %v", err)
	}
	if len(site.Pages) != 0 {
		t.Errorf("Expected empty configuration, got %d pages", len(site.Pages))
	}
}

func TestLoadSiteConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	os.WriteFile(path, []byte("pages: [unclosed"), 0644)

	if _, err := LoadSiteConfig(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
