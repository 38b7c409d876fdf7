// Package catalog loads the tour catalog and manager directory from a YAML
// document at startup. Both are immutable for the process lifetime.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tour is a single catalog entry. Description may embed simple HTML markup.
type Tour struct {
	Key            string
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	URL            string `yaml:"url"`
	ManagerContact string `yaml:"manager_contact"`
}

// Catalog is an immutable key → tour mapping preserving document order.
type Catalog struct {
	tours map[string]Tour
	order []string
}

// Get returns the tour for the given key.
func (c *Catalog) Get(key string) (Tour, bool) {
	t, ok := c.tours[key]
	return t, ok
}

// Keys returns tour keys in document order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of tours.
func (c *Catalog) Len() int {
	return len(c.order)
}

type document struct {
	Managers map[string]string `yaml:"managers"`
	Tours    yaml.Node         `yaml:"tours"`
}

// Load reads the catalog document. fallbackContact is used as the default
// manager contact when the document does not define one; the resulting
// directory must always resolve to a non-empty string, so a missing default
// is a load error.
func Load(path, fallbackContact string) (*Catalog, *Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data, fallbackContact)
}

// Parse decodes a catalog document from raw YAML.
func Parse(data []byte, fallbackContact string) (*Catalog, *Directory, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	cat := &Catalog{tours: make(map[string]Tour)}
	if doc.Tours.Kind != 0 {
		if doc.Tours.Kind != yaml.MappingNode {
			return nil, nil, fmt.Errorf("catalog: tours must be a mapping")
		}
		// mapping nodes alternate key/value children, which preserves
		// document order lost by map decoding
		for i := 0; i+1 < len(doc.Tours.Content); i += 2 {
			keyNode, valNode := doc.Tours.Content[i], doc.Tours.Content[i+1]
			key := strings.TrimSpace(keyNode.Value)
			if key == "" {
				return nil, nil, fmt.Errorf("catalog: empty tour key at line %d", keyNode.Line)
			}
			if _, dup := cat.tours[key]; dup {
				return nil, nil, fmt.Errorf("catalog: duplicate tour key %q", key)
			}
			var t Tour
			if err := valNode.Decode(&t); err != nil {
				return nil, nil, fmt.Errorf("catalog: tour %q: %w", key, err)
			}
			t.Key = key
			if strings.TrimSpace(t.Name) == "" {
				return nil, nil, fmt.Errorf("catalog: tour %q has no name", key)
			}
			cat.tours[key] = t
			cat.order = append(cat.order, key)
		}
	}

	dir, err := newDirectory(doc.Managers, fallbackContact)
	if err != nil {
		return nil, nil, err
	}
	return cat, dir, nil
}
