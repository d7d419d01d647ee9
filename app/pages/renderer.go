package pages

import (
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/isabella232/www-teepy/app/news"
)

const (
	IndexPage    = "index"
	NotFoundPage = "404"
)

var ErrNotFound = errors.New("page not found")

type Data struct {
	Page string
	Meta PageMeta
	News []news.Item
}

// Renderer owns the parsed page templates. Templates are named after their
// file; names starting with "_" are partials and never served as pages.
type Renderer struct {
	templates *template.Template
	site      *SiteConfig
}

func NewRenderer(dir string, site *SiteConfig) (*Renderer, error) {
	templates, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates in %s: %w", dir, err)
	}

	for _, required := range []string{IndexPage, NotFoundPage} {
		if templates.Lookup(TemplateName(required)) == nil {
			return nil, fmt.Errorf("required template %s missing from %s", TemplateName(required), dir)
		}
	}

	if site == nil {
		site = &SiteConfig{Pages: map[string]PageMeta{}}
	}

	return &Renderer{templates: templates, site: site}, nil
}

func TemplateName(page string) string {
	return page + ".html"
}

func (r *Renderer) Templates() *template.Template {
	return r.templates
}

// Lookup returns the template name serving page, or ErrNotFound.
func (r *Renderer) Lookup(page string) (string, error) {
	if page == "" || strings.HasPrefix(page, "_") || strings.HasPrefix(page, ".") || strings.ContainsAny(page, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, page)
	}

	name := TemplateName(page)
	if r.templates.Lookup(name) == nil {
		return "", fmt.Errorf("%w: %q", ErrNotFound, page)
	}

	return name, nil
}

func (r *Renderer) Data(page string) Data {
	return Data{
		Page: page,
		Meta: r.site.Meta(page),
		News: []news.Item{},
	}
}

// Count is the number of templates, partials included.
func (r *Renderer) Count() int {
	return len(r.templates.Templates())
}
