// Package rules resolves utility class names into CSS declarations.
//
// The default resolver understands three color rules, tried in order:
//
//	bg-<token>[/<opacity>]      -> background
//	text-<token>[/<opacity>]    -> color
//	border-<token>[/<opacity>]  -> borderColor
//
// A token is made of lowercase letters, digits and hyphens and refers to the
// custom property --<token>. The optional opacity is one to three digits and
// blends the token toward transparent with color-mix. Opacity is not range
// checked: bg-x/999 produces 999%.
//
// Class names that match no rule are declined so the caller can fall back
// to its own handling.
package rules

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
)

// Declaration is one CSS property/value pair. Property uses the camelCase
// spelling (borderColor); the stylesheet writer converts it.
type Declaration struct {
	Property string
	Value    string
	// Token is the custom property name referenced by a color rule,
	// without the leading dashes. Empty for static rules.
	Token string
}

// Rule maps matching class names to a declaration
type Rule struct {
	// Name identifies the rule in debug output
	Name  string
	match func(class string) (Declaration, bool)
}

// Match applies the rule to a class name
func (r Rule) Match(class string) (Declaration, bool) {
	return r.match(class)
}

// ColorRule builds a rule for "<prefix>-<token>[/<opacity>]" emitting property
func ColorRule(prefix, property string) Rule {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-([a-z0-9-]+)(?:/(\d{1,3}))?$`)
	return Rule{
		Name: prefix,
		match: func(class string) (Declaration, bool) {
			m := pattern.FindStringSubmatch(class)
			if m == nil {
				return Declaration{}, false
			}
			return Declaration{
				Property: property,
				Value:    ColorValue(m[1], m[2]),
				Token:    m[1],
			}, true
		},
	}
}

// StaticRule builds a rule that matches exactly one class name
func StaticRule(class, property, value string) Rule {
	return Rule{
		Name: class,
		match: func(c string) (Declaration, bool) {
			if c != class {
				return Declaration{}, false
			}
			return Declaration{Property: property, Value: value}, true
		},
	}
}

// ColorValue renders the value for a token reference. An empty opacity
// yields a plain var() reference.
func ColorValue(token, opacity string) string {
	if opacity == "" {
		return fmt.Sprintf("var(--%s)", token)
	}
	return fmt.Sprintf("color-mix(in oklab, var(--%s) %s%%, transparent)", token, opacity)
}

// ColorRules returns the background, text and border rules in match order
func ColorRules() []Rule {
	return []Rule{
		ColorRule("bg", "background"),
		ColorRule("text", "color"),
		ColorRule("border", "borderColor"),
	}
}

// Resolver tries its rules in order. It holds no mutable state and is safe
// for concurrent use.
type Resolver struct {
	rules []Rule
}

// NewResolver creates a resolver from an ordered rule list
func NewResolver(rules ...Rule) *Resolver {
	return &Resolver{rules: slices.Clone(rules)}
}

// Default returns a resolver with only the color rules
func Default() *Resolver {
	return NewResolver(ColorRules()...)
}

// WithFontFamilies returns a copy of r extended with one static
// "font-<name>" rule per family, emitting fontFamily. Families are added
// in name order after the existing rules.
func (r *Resolver) WithFontFamilies(families map[string]string) *Resolver {
	next := NewResolver(r.rules...)
	for _, name := range slices.Sorted(maps.Keys(families)) {
		next.rules = append(next.rules, StaticRule("font-"+name, "fontFamily", families[name]))
	}
	return next
}

// Rules returns the resolver's rules in match order
func (r *Resolver) Rules() []Rule {
	return slices.Clone(r.rules)
}

// Resolve returns the declaration of the first matching rule. ok is false
// when no rule matches.
func (r *Resolver) Resolve(class string) (decl Declaration, ok bool) {
	for _, rule := range r.rules {
		if decl, ok = rule.Match(class); ok {
			return decl, true
		}
	}
	return Declaration{}, false
}

var defaultResolver = Default()

// Resolve resolves class with the default color rules
func Resolve(class string) (Declaration, bool) {
	return defaultResolver.Resolve(class)
}
