// ABOUTME: Catalog domain model maps output categories to their configured sources
// ABOUTME: Provides validation so the orchestrator only receives a well-formed catalog

package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultCategoryLimit caps a category output when no limit is configured
const DefaultCategoryLimit = 60

// SourceConfig describes one feed to fetch for a category
type SourceConfig struct {
	// URL is the feed location
	URL string `yaml:"url"`

	// Label overrides the feed's own title for every item when set
	Label string `yaml:"label"`

	// Category is the owning category name, filled in when the catalog is built
	Category string `yaml:"-"`
}

// Category is one output file and the sources that feed it
type Category struct {
	Name    string         `yaml:"name"`
	File    string         `yaml:"file"`
	Limit   int            `yaml:"limit"`
	Sources []SourceConfig `yaml:"sources"`
}

// OutputFile returns the file name the category is written to
func (c Category) OutputFile() string {
	if c.File != "" {
		return c.File
	}
	return "out-" + c.Name + ".json"
}

// MaxItems returns the configured limit or the default
func (c Category) MaxItems() int {
	if c.Limit > 0 {
		return c.Limit
	}
	return DefaultCategoryLimit
}

// Catalog is the ordered, immutable set of categories for one run
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// NewCatalog copies the given categories and stamps each source with its category
func NewCatalog(categories []Category) (Catalog, error) {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		sources := make([]SourceConfig, len(c.Sources))
		for i, s := range c.Sources {
			s.Category = c.Name
			s.URL = strings.TrimSpace(s.URL)
			s.Label = strings.TrimSpace(s.Label)
			sources[i] = s
		}
		c.Sources = sources
		out = append(out, c)
	}

	catalog := Catalog{Categories: out}
	if err := catalog.Validate(); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}

// Validate checks that category names are unique and every source URL is absolute
func (c Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return errors.New("catalog has no categories")
	}

	seen := make(map[string]bool, len(c.Categories))
	files := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return errors.New("category name cannot be empty")
		}
		if seen[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true

		if files[cat.OutputFile()] {
			return fmt.Errorf("category %q writes to an output file already in use", cat.Name)
		}
		files[cat.OutputFile()] = true

		if cat.Limit < 0 {
			return fmt.Errorf("category %q has a negative limit", cat.Name)
		}

		for _, s := range cat.Sources {
			u, err := url.Parse(s.URL)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("category %q has an invalid source URL %q", cat.Name, s.URL)
			}
		}
	}
	return nil
}

// Select returns a catalog restricted to the named categories, keeping catalog order
func (c Catalog) Select(names []string) (Catalog, error) {
	if len(names) == 0 {
		return c, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.TrimSpace(n)] = true
	}

	var out []Category
	for _, cat := range c.Categories {
		if wanted[cat.Name] {
			out = append(out, cat)
			delete(wanted, cat.Name)
		}
	}
	for n := range wanted {
		return Catalog{}, fmt.Errorf("unknown category %q", n)
	}
	return Catalog{Categories: out}, nil
}
