// Package variants handles the prefixes that scope a utility class to an
// interaction state or a viewport width, such as hover:bg-x or md:text-y,
// and the grouped shorthand hover:(bg-x text-y).
package variants

import (
	"strings"
)

// Kind distinguishes selector variants from media variants
type Kind int

const (
	// Pseudo variants append a pseudo-class to the selector
	Pseudo Kind = iota
	// Breakpoint variants wrap the rule in a min-width media query
	Breakpoint
)

// Variant is one recognized prefix
type Variant struct {
	Name string
	Kind Kind
	// Selector is the pseudo-class suffix for Pseudo variants
	Selector string
	// MinWidth is the breakpoint width in pixels for Breakpoint variants
	MinWidth int
}

// Breakpoints lists the viewport variants in ascending width
var Breakpoints = []Variant{
	{Name: "sm", Kind: Breakpoint, MinWidth: 640},
	{Name: "md", Kind: Breakpoint, MinWidth: 768},
	{Name: "lg", Kind: Breakpoint, MinWidth: 1024},
	{Name: "xl", Kind: Breakpoint, MinWidth: 1280},
	{Name: "2xl", Kind: Breakpoint, MinWidth: 1536},
}

// Pseudos lists the state variants
var Pseudos = []Variant{
	{Name: "hover", Selector: ":hover"},
	{Name: "focus", Selector: ":focus"},
	{Name: "focus-visible", Selector: ":focus-visible"},
	{Name: "focus-within", Selector: ":focus-within"},
	{Name: "active", Selector: ":active"},
	{Name: "visited", Selector: ":visited"},
	{Name: "disabled", Selector: ":disabled"},
	{Name: "first", Selector: ":first-child"},
	{Name: "last", Selector: ":last-child"},
}

var known = func() map[string]Variant {
	m := make(map[string]Variant, len(Breakpoints)+len(Pseudos))
	for _, v := range Breakpoints {
		m[v.Name] = v
	}
	for _, v := range Pseudos {
		m[v.Name] = v
	}
	return m
}()

// Parsed is a class name split into its variants and the bare utility
type Parsed struct {
	Class    string
	Utility  string
	Variants []Variant
}

// Parse splits leading variants off class. It fails for unknown variants,
// more than one breakpoint, or an empty utility.
func Parse(class string) (Parsed, bool) {
	parts := strings.Split(class, ":")
	utility := parts[len(parts)-1]
	if utility == "" {
		return Parsed{}, false
	}

	p := Parsed{Class: class, Utility: utility}
	breakpoints := 0
	for _, name := range parts[:len(parts)-1] {
		v, ok := known[name]
		if !ok {
			return Parsed{}, false
		}
		if v.Kind == Breakpoint {
			breakpoints++
			if breakpoints > 1 {
				return Parsed{}, false
			}
		}
		p.Variants = append(p.Variants, v)
	}
	return p, true
}

// MinWidth returns the breakpoint width, or 0 when the class has none
func (p Parsed) MinWidth() int {
	for _, v := range p.Variants {
		if v.Kind == Breakpoint {
			return v.MinWidth
		}
	}
	return 0
}

// PseudoSelector concatenates the pseudo-class suffixes in prefix order
func (p Parsed) PseudoSelector() string {
	var b strings.Builder
	for _, v := range p.Variants {
		if v.Kind == Pseudo {
			b.WriteString(v.Selector)
		}
	}
	return b.String()
}
