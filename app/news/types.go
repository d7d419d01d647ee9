package news

import (
	"context"
	"time"
)

type Item struct {
	Title        string
	Description  string // plain text, markup stripped
	Link         string
	PublishedAt  time.Time
	ThumbnailURL string

	// Filled by the client from PublishedAt.
	PublishedISO     string
	PublishedDisplay string
}

// Fetcher returns the current news items. It never fails: an unavailable
// feed yields an empty slice.
type Fetcher interface {
	Fetch(ctx context.Context) []Item
}
