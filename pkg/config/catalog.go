// ABOUTME: Catalog loading from YAML with a built-in default set of categories
// ABOUTME: Produces a validated domain.Catalog for the orchestrator

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
)

//go:embed sources.yaml
var defaultCatalog []byte

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() (domain.Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog file. An empty path returns the built-in catalog.
func LoadCatalog(path string) (domain.Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes YAML catalog data. Unknown keys are rejected.
func ParseCatalog(data []byte) (domain.Catalog, error) {
	var raw domain.Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Catalog{}, errors.New("catalog is empty")
		}
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	return domain.NewCatalog(raw.Categories)
}
