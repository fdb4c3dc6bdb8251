package page

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadSelector is returned for selectors outside the supported grammar.
var ErrBadSelector = errors.New("page: bad selector")

// compound matches a single element: an optional tag plus ids and classes,
// e.g. "li.block#first".
type compound struct {
	tag     string // "" or "*" matches any tag
	id      string
	classes []string
}

func (c compound) matches(e *Element) bool {
	if c.tag != "" && c.tag != "*" && !strings.EqualFold(c.tag, e.Tag) {
		return false
	}
	if c.id != "" && c.id != e.ID {
		return false
	}
	for _, cl := range c.classes {
		if !e.HasClass(cl) {
			return false
		}
	}
	return true
}

// Selector is a comma-separated group of compound selectors.
// Combinators (descendant, child, sibling) are not supported since pages are flat.
type Selector struct {
	raw   string
	parts []compound
}

// ParseSelector parses expressions such as ".block", "li", "#hero",
// "a.nav, p.block". Errors wrap ErrBadSelector.
func ParseSelector(s string) (Selector, error) {
	sel := Selector{raw: strings.TrimSpace(s)}
	if sel.raw == "" {
		return Selector{}, fmt.Errorf("%w: empty", ErrBadSelector)
	}

	for _, group := range strings.Split(sel.raw, ",") {
		c, err := parseCompound(strings.TrimSpace(group))
		if err != nil {
			return Selector{}, fmt.Errorf("%w: %q: %v", ErrBadSelector, s, err)
		}
		sel.parts = append(sel.parts, c)
	}
	return sel, nil
}

// MustParseSelector is like ParseSelector but panics on error.
// Intended for constant selectors.
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

func parseCompound(s string) (compound, error) {
	var c compound
	if s == "" {
		return c, errors.New("empty group")
	}

	// Leading tag name, if any.
	i := 0
	for i < len(s) && s[i] != '.' && s[i] != '#' {
		i++
	}
	c.tag = s[:i]
	if c.tag != "*" && c.tag != "" && !isIdent(c.tag) {
		return c, fmt.Errorf("bad tag %q", c.tag)
	}

	for i < len(s) {
		kind := s[i]
		j := i + 1
		for j < len(s) && s[j] != '.' && s[j] != '#' {
			j++
		}
		name := s[i+1 : j]
		if !isIdent(name) {
			return c, fmt.Errorf("bad name %q", s[i:j])
		}
		switch kind {
		case '.':
			c.classes = append(c.classes, name)
		case '#':
			if c.id != "" && c.id != name {
				return c, fmt.Errorf("conflicting ids %q and %q", c.id, name)
			}
			c.id = name
		}
		i = j
	}
	return c, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r == '-' || (r >= '0' && r <= '9'):
			if i == 0 && r != '-' {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Matches reports whether any group matches e. Visibility is not checked.
func (s Selector) Matches(e *Element) bool {
	for _, c := range s.parts {
		if c.matches(e) {
			return true
		}
	}
	return false
}

// String returns the selector as written.
func (s Selector) String() string {
	return s.raw
}
