// Package safelist lists the classes generated whether or not any content
// file mentions them.
package safelist

import "bennypowers.dev/tuc/internal/collections"

// Scales generates one class per prefix, group and step:
// "<prefix>-<group>-<step>"
type Scales struct {
	Prefixes []string `json:"prefixes" yaml:"prefixes"`
	Groups   []string `json:"groups" yaml:"groups"`
	Steps    []string `json:"steps" yaml:"steps"`
}

// DefaultLiterals are the semantic system, font and layout classes
var DefaultLiterals = []string{
	"bg-sys-bg",
	"text-sys-fg",
	"bg-sys-content",
	"text-sys-accent",
	"border-sys-border",
	"text-sys-link",

	"font-sans",
	"font-code",
	"font-mono",

	"bg-color-background",
	"text-color-foreground",
	"border-color-divider",
	"text-color-link",
	"text-color-link-hover",
}

// DefaultScales covers the brand scales (neutral, primary, secondary,
// ternary, action) and the semantic scales (success, warning, danger)
func DefaultScales() Scales {
	return Scales{
		Prefixes: []string{"bg-color", "text-color", "border-color"},
		Groups: []string{
			"neutral", "primary", "secondary", "ternary", "action",
			"success", "warning", "danger",
		},
		Steps: []string{"base", "50", "100", "200", "300", "400", "500", "600", "700", "800", "900"},
	}
}

// Classes returns the expanded scale classes, iterating group, then step,
// then prefix
func (s Scales) Classes() []string {
	out := make([]string, 0, len(s.Groups)*len(s.Steps)*len(s.Prefixes))
	for _, group := range s.Groups {
		for _, step := range s.Steps {
			for _, prefix := range s.Prefixes {
				out = append(out, prefix+"-"+group+"-"+step)
			}
		}
	}
	return out
}

// Expand joins literals and scale classes, dropping repeats while keeping
// first-seen order
func Expand(literals []string, scales Scales) []string {
	seen := collections.NewSet[string]()
	var out []string
	add := func(class string) {
		if class == "" || seen.Has(class) {
			return
		}
		seen.Add(class)
		out = append(out, class)
	}
	for _, class := range literals {
		add(class)
	}
	for _, class := range scales.Classes() {
		add(class)
	}
	return out
}
