package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ytget/swipeplayer/internal/model"
)

var (
	// ErrDuplicateID is returned when two catalog tracks share an id
	ErrDuplicateID = errors.New("duplicate track id")
	// ErrEmptyTitle is returned for catalog tracks without a title
	ErrEmptyTitle = errors.New("track title is empty")
)

// ParseCatalog decodes and validates a YAML catalog
func ParseCatalog(data []byte) (model.Catalog, error) {
	var c model.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return model.Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := ValidateCatalog(c); err != nil {
		return model.Catalog{}, err
	}
	return c, nil
}

// ValidateCatalog checks that ids are unique and titles are present
func ValidateCatalog(c model.Catalog) error {
	seen := make(map[int]struct{}, len(c.Tracks))
	for i, t := range c.Tracks {
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("track %d at position %d: %w", t.ID, i, ErrDuplicateID)
		}
		seen[t.ID] = struct{}{}

		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("track %d at position %d: %w", t.ID, i, ErrEmptyTitle)
		}
	}
	return nil
}

// LoadCatalog reads a YAML catalog from fs
func LoadCatalog(fs afero.Fs, path string) (model.Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// CatalogSource loads a catalog file on every Load
type CatalogSource struct {
	Fs   afero.Fs
	Path string
}

// Load reads the catalog file
func (c CatalogSource) Load() (model.Catalog, error) {
	return LoadCatalog(c.Fs, c.Path)
}

// SaveCatalog writes c to fs as YAML
func SaveCatalog(fs afero.Fs, path string, c model.Catalog) error {
	if err := ValidateCatalog(c); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}
