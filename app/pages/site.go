package pages

import (
	"cmp"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SiteConfig struct {
	Title string              `yaml:"title"`
	Pages map[string]PageMeta `yaml:"pages"`
}

type PageMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// LoadSiteConfig reads page metadata. A missing file yields an empty
// configuration.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	site := &SiteConfig{Pages: map[string]PageMeta{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return site, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if site.Pages == nil {
		site.Pages = map[string]PageMeta{}
	}

	return site, nil
}

// Meta returns the metadata of page, titled after the site when the page has
// no title of its own.
func (s *SiteConfig) Meta(page string) PageMeta {
	meta := s.Pages[page]
	meta.Title = cmp.Or(meta.Title, s.Title)
	return meta
}
