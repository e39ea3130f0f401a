// Package tokens loads the custom properties that utility classes refer to,
// from DTCG token files and from existing CSS sheets.
package tokens

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// SourceKind records where a definition came from
type SourceKind int

const (
	// FromDTCG definitions were read from a design token file
	FromDTCG SourceKind = iota
	// FromCSS definitions were declared in a stylesheet
	FromCSS
)

// Definition is one custom property
type Definition struct {
	// Name includes the leading dashes: --color-primary-400
	Name  string
	Value string
	// Type is the DTCG $type when known (color, dimension, ...)
	Type string
	// Hex is the value normalized by csscolorparser, empty when the value
	// is not a parseable color
	Hex    string
	Kind   SourceKind
	Source string
}

// IsColor reports whether the definition holds a color
func (d Definition) IsColor() bool {
	return d.Hex != "" || d.Type == "color"
}

// NormalizeColor parses value as a CSS color and returns #rrggbb, or
// #rrggbbaa for translucent colors. ok is false for anything that is not a
// literal color (var() references, dimensions, keywords like inherit).
func NormalizeColor(value string) (hex string, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "var(") {
		return "", false
	}
	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return "", false
	}
	return parsed.HexString(), true
}

// Set is an ordered collection of definitions keyed by name. Redefining a
// name replaces the value in place, so later sources win as in CSS.
type Set struct {
	defs  []Definition
	index map[string]int
}

// NewSet creates an empty Set
func NewSet() *Set {
	return &Set{index: map[string]int{}}
}

// Add inserts or replaces a definition
func (s *Set) Add(d Definition) {
	if i, ok := s.index[d.Name]; ok {
		s.defs[i] = d
		return
	}
	s.index[d.Name] = len(s.defs)
	s.defs = append(s.defs, d)
}

// Lookup finds a definition by token, with or without leading dashes
func (s *Set) Lookup(token string) (Definition, bool) {
	if !strings.HasPrefix(token, "--") {
		token = "--" + token
	}
	i, ok := s.index[token]
	if !ok {
		return Definition{}, false
	}
	return s.defs[i], true
}

// All returns the definitions in insertion order
func (s *Set) All() []Definition {
	return append([]Definition(nil), s.defs...)
}

// Len returns the number of definitions
func (s *Set) Len() int {
	return len(s.defs)
}

// Filter returns the definitions of one kind in insertion order
func (s *Set) Filter(kind SourceKind) []Definition {
	var out []Definition
	for _, d := range s.defs {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
