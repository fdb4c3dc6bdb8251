// Package formats decodes page files. Each supported file format is a
// Format; Detect picks one from the file name.
package formats

import (
	"fmt"
	"path/filepath"
)

// Document is the on-disk shape of a page, shared by all formats.
type Document struct {
	Title    string            `yaml:"title" toml:"title"`
	Width    int               `yaml:"width,omitempty" toml:"width"`
	Height   int               `yaml:"height,omitempty" toml:"height"`
	Elements []ElementDocument `yaml:"elements" toml:"elements"`
}

// ElementDocument is one element entry. Class holds space-separated class
// names, as in an HTML class attribute.
type ElementDocument struct {
	ID     string `yaml:"id,omitempty" toml:"id"`
	Tag    string `yaml:"tag,omitempty" toml:"tag"`
	Class  string `yaml:"class,omitempty" toml:"class"`
	Text   string `yaml:"text,omitempty" toml:"text"`
	X      int    `yaml:"x" toml:"x"`
	Y      int    `yaml:"y" toml:"y"`
	W      int    `yaml:"w" toml:"w"`
	H      int    `yaml:"h" toml:"h"`
	Hidden bool   `yaml:"hidden,omitempty" toml:"hidden"`
	Color  string `yaml:"color,omitempty" toml:"color"`
}

// Format decodes one page file format.
type Format interface {
	// Name returns the format identifier (e.g., "yaml").
	Name() string
	// Supports reports whether this format handles the given file name.
	Supports(filename string) bool
	// Decode parses raw file contents.
	Decode(data []byte) (*Document, error)
}

// All returns every supported format.
func All() []Format {
	return []Format{YAML{}, TOML{}}
}

// Detect finds a format that supports the given path.
// Returns an error if no format matches.
func Detect(path string, formats ...Format) (Format, error) {
	if len(formats) == 0 {
		formats = All()
	}
	name := filepath.Base(path)
	for _, f := range formats {
		if f.Supports(name) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unsupported page format: %s", name)
}
