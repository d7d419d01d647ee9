package api

import (
	"context"
	"net/url"

	"github.com/isabella232/www-teepy/app/contact"
)

type DispatcherInterface interface {
	Dispatch(ctx context.Context, name string, fields url.Values) (string, error)
}

var _ DispatcherInterface = (*contact.Dispatcher)(nil)

// Status describes the running configuration for the health endpoint.
type Status struct {
	Version      string
	Debug        bool
	SheetBackend string
	NewsFeedURL  string
}
