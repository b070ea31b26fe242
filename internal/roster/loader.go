package roster

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk YAML layout:
//
//	actors:
//	  - name: Alpha
//	    health: 80
//	    stamina: 0.5
//	    god_mode: true
type rosterFile struct {
	Actors []Entry `yaml:"actors"`
}

// Entry is one actor in a roster file. Nil fields were absent from the file:
// a new player takes the default for them and an existing player keeps its
// current value.
type Entry struct {
	Name      string   `yaml:"name"`
	Health    *float64 `yaml:"health"`
	MaxHealth *float64 `yaml:"max_health"`
	Stamina   *float64 `yaml:"stamina"`
	GodMode   *bool    `yaml:"god_mode"`
	Noclip    *bool    `yaml:"noclip"`
}

// ParseEntries decodes a YAML roster document. Every entry must be named.
func ParseEntries(data []byte) ([]Entry, error) {
	var doc rosterFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	for i, e := range doc.Actors {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("roster entry %d has no name", i)
		}
	}
	if doc.Actors == nil {
		return []Entry{}, nil
	}
	return doc.Actors, nil
}

// LoadFile reads a YAML roster file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}
	return ParseEntries(data)
}
