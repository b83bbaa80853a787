package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrEmptyCatalog        = errors.New("seed catalog is empty")
	ErrDuplicateObjectCode = errors.New("seed catalog has duplicate object code")
	ErrBlankCatalogEntry   = errors.New("seed catalog has a blank entry")
)

// ObjectEntry describes one project object to create.
type ObjectEntry struct {
	Code      string `yaml:"code"`
	ShortName string `yaml:"short_name"`
	FullName  string `yaml:"full_name"`
}

// SectionEntry is one row of the section template copied into every object.
type SectionEntry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Catalog is the fixed hierarchy seeded on first boot. Sections and parts are
// templates: every object gets its own copy of all sections and every section
// its own copy of all parts.
type Catalog struct {
	Objects  []ObjectEntry  `yaml:"objects"`
	Sections []SectionEntry `yaml:"sections"`
	Parts    []string       `yaml:"parts"`
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog file, or the embedded catalog when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Validate checks that every list is populated and object codes are unique.
func (c *Catalog) Validate() error {
	if len(c.Objects) == 0 || len(c.Sections) == 0 || len(c.Parts) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(c.Objects))
	for _, obj := range c.Objects {
		if strings.TrimSpace(obj.Code) == "" || strings.TrimSpace(obj.ShortName) == "" || strings.TrimSpace(obj.FullName) == "" {
			return ErrBlankCatalogEntry
		}
		if _, ok := seen[obj.Code]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateObjectCode, obj.Code)
		}
		seen[obj.Code] = struct{}{}
	}
	for _, sec := range c.Sections {
		if strings.TrimSpace(sec.Code) == "" || strings.TrimSpace(sec.Name) == "" {
			return ErrBlankCatalogEntry
		}
	}
	for _, name := range c.Parts {
		if strings.TrimSpace(name) == "" {
			return ErrBlankCatalogEntry
		}
	}
	return nil
}
