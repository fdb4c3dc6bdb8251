package page

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/page/formats"
)

//go:embed pages/demo.yaml
var embedded embed.FS

// DemoName is the name the embedded page is listed under.
const DemoName = "demo"

// ErrInvalid is returned when a decoded page violates layout rules.
var ErrInvalid = errors.New("page: invalid page")

// Load reads a page file, picking the format from its extension.
func Load(path string) (*Page, error) {
	format, err := formats.Detect(path)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("page: read %s: %w", path, err)
	}

	p, err := decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("page: %s: %w", path, err)
	}
	if p.Title == "" {
		p.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Demo returns the embedded demo page.
func Demo() *Page {
	data, err := embedded.ReadFile("pages/demo.yaml")
	if err != nil {
		panic("page: embedded demo missing: " + err.Error())
	}
	p, err := decode(formats.YAML{}, data)
	if err != nil {
		panic("page: embedded demo invalid: " + err.Error())
	}
	return p
}

// LoadOrDemo loads path, or returns the demo page when path is empty.
func LoadOrDemo(path string) (*Page, error) {
	if path == "" || path == DemoName {
		return Demo(), nil
	}
	return Load(path)
}

// List returns the page files in dir that a known format can read, sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("page: list %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := formats.Detect(e.Name()); err == nil {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func decode(format formats.Format, data []byte) (*Page, error) {
	doc, err := format.Decode(data)
	if err != nil {
		return nil, err
	}
	return build(doc)
}

// build converts a decoded document to a Page and validates it.
func build(doc *formats.Document) (*Page, error) {
	p := &Page{
		Title:    doc.Title,
		Elements: make([]Element, 0, len(doc.Elements)),
	}

	ids := make(map[string]int, len(doc.Elements))
	for i, ed := range doc.Elements {
		if ed.W < 0 || ed.H < 0 || ed.X < 0 || ed.Y < 0 {
			return nil, fmt.Errorf("%w: element %d: negative position or size", ErrInvalid, i)
		}
		if ed.ID != "" {
			if prev, dup := ids[ed.ID]; dup {
				return nil, fmt.Errorf("%w: element %d: id %q already used by element %d", ErrInvalid, i, ed.ID, prev)
			}
			ids[ed.ID] = i
		}
		color, ok := core.ParseColor(ed.Color)
		if !ok {
			return nil, fmt.Errorf("%w: element %d: unknown color %q", ErrInvalid, i, ed.Color)
		}

		tag := ed.Tag
		if tag == "" {
			tag = "div"
		}

		p.Elements = append(p.Elements, Element{
			ID:      ed.ID,
			Tag:     strings.ToLower(tag),
			Classes: strings.Fields(ed.Class),
			Text:    ed.Text,
			Box:     core.NewBox(ed.X, ed.Y, ed.W, ed.H),
			Hidden:  ed.Hidden,
			Color:   color,
		})
	}

	w, h := p.extent()
	p.Width = max(doc.Width, w)
	p.Height = max(doc.Height, h)
	return p, nil
}
