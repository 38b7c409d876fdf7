package catalog

import (
	"fmt"
	"strings"
)

// DefaultKey is the manager directory fallback entry.
const DefaultKey = "default"

// Directory maps category keys to manager phone strings. Resolve never
// returns an empty string: unknown keys fall back to the default entry.
type Directory struct {
	contacts map[string]string
}

func newDirectory(managers map[string]string, fallbackContact string) (*Directory, error) {
	contacts := make(map[string]string, len(managers)+1)
	for k, v := range managers {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		contacts[k] = v
	}
	if contacts[DefaultKey] == "" {
		fallback := strings.TrimSpace(fallbackContact)
		if fallback == "" {
			return nil, fmt.Errorf("catalog: no default manager contact configured")
		}
		contacts[DefaultKey] = fallback
	}
	return &Directory{contacts: contacts}, nil
}

// Resolve returns the contact for key, or the default contact when the key
// has no dedicated manager.
func (d *Directory) Resolve(key string) string {
	if c, ok := d.contacts[key]; ok && c != "" {
		return c
	}
	return d.contacts[DefaultKey]
}

// Default returns the fallback contact.
func (d *Directory) Default() string {
	return d.contacts[DefaultKey]
}
