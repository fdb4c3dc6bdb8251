package formats

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOML decodes .toml pages, with elements as [[elements]] tables.
type TOML struct{}

func (TOML) Name() string { return "toml" }

func (TOML) Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}

func (TOML) Decode(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("toml: unknown key %q", undecoded[0].String())
	}
	return &doc, nil
}
