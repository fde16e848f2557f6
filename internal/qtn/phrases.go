package qtn

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed phrases.toml
var defaultPhrases []byte

// Phrases is a book of reply templates keyed by `section.name`.
type Phrases struct {
	entries map[string]string
}

// LoadPhrases reads a TOML phrase book made of string tables.
func LoadPhrases(data []byte) (*Phrases, error) {
	var raw map[string]map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode phrases: %w", err)
	}
	entries := make(map[string]string)
	for section, names := range raw {
		for name, text := range names {
			entries[section+"."+name] = text
		}
	}
	return &Phrases{entries: entries}, nil
}

// DefaultPhrases returns the phrase book compiled into the binary.
func DefaultPhrases() *Phrases {
	p, err := LoadPhrases(defaultPhrases)
	if err != nil {
		panic(fmt.Sprintf("embedded phrases are invalid: %v", err))
	}
	return p
}

// Format renders the phrase stored under key.
func (p *Phrases) Format(key string, args ...any) (string, error) {
	text, ok := p.entries[key]
	if !ok {
		return "", fmt.Errorf("phrase %q is not defined", key)
	}
	return strings.TrimSpace(fmt.Sprintf(text, args...)), nil
}
