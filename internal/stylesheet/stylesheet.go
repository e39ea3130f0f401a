// Package stylesheet renders resolved utilities as CSS.
package stylesheet

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"bennypowers.dev/tuc/internal/rules"
	"github.com/iancoleman/strcase"
)

// Entry is one generated utility
type Entry struct {
	// Class is the full class name as written in markup, variants included
	Class string
	// Pseudo is appended to the selector (":hover:focus")
	Pseudo string
	// MinWidth wraps the rule in a media query when non-zero
	MinWidth    int
	Declaration rules.Declaration
}

// CustomProperty is a :root definition
type CustomProperty struct {
	Name  string
	Value string
}

// Options controls rendering
type Options struct {
	// Root definitions are written first, in the given order
	Root   []CustomProperty
	Minify bool
}

// PropertyName converts the camelCase property of a declaration to CSS
// spelling. Custom properties are left alone.
func PropertyName(property string) string {
	if strings.HasPrefix(property, "--") {
		return property
	}
	return strcase.ToKebab(property)
}

// Selector returns the escaped class selector with its pseudo-classes
func (e Entry) Selector() string {
	return "." + Escape(e.Class) + e.Pseudo
}

// Sort orders entries for output: base rules, then pseudo-class rules,
// then each breakpoint by ascending width with the same split inside.
// Ties are broken by class name.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.MinWidth, b.MinWidth),
			cmp.Compare(a.group(), b.group()),
			cmp.Compare(a.Class, b.Class),
		)
	})
}

// group is 0 for base rules and 1 for pseudo-class rules
func (e Entry) group() int {
	if e.Pseudo == "" {
		return 0
	}
	return 1
}

type writer struct {
	b      strings.Builder
	minify bool
}

func (w *writer) open(selector string, depth int) {
	if w.minify {
		w.b.WriteString(selector + "{")
		return
	}
	w.b.WriteString(strings.Repeat("  ", depth) + selector + " {\n")
}

func (w *writer) close(depth int) {
	if w.minify {
		w.b.WriteString("}")
		return
	}
	w.b.WriteString(strings.Repeat("  ", depth) + "}\n")
}

func (w *writer) decl(property, value string, depth int, last bool) {
	if w.minify {
		w.b.WriteString(property + ":" + value)
		if !last {
			w.b.WriteString(";")
		}
		return
	}
	w.b.WriteString(strings.Repeat("  ", depth) + property + ": " + value + ";\n")
}

// Render returns the stylesheet for entries. Entries are sorted in place.
func Render(entries []Entry, opts Options) string {
	Sort(entries)
	w := &writer{minify: opts.Minify}

	if len(opts.Root) > 0 {
		w.open(":root", 0)
		for i, p := range opts.Root {
			w.decl(p.Name, p.Value, 1, i == len(opts.Root)-1)
		}
		w.close(0)
	}

	for i := 0; i < len(entries); {
		width := entries[i].MinWidth
		j := i
		for j < len(entries) && entries[j].MinWidth == width {
			j++
		}

		depth := 0
		if width > 0 {
			if opts.Minify {
				w.open(fmt.Sprintf("@media (min-width:%dpx)", width), 0)
			} else {
				w.open(fmt.Sprintf("@media (min-width: %dpx)", width), 0)
			}
			depth = 1
		}
		for _, e := range entries[i:j] {
			w.open(e.Selector(), depth)
			w.decl(PropertyName(e.Declaration.Property), e.Declaration.Value, depth+1, true)
			w.close(depth)
		}
		if width > 0 {
			w.close(0)
		}
		i = j
	}

	return w.b.String()
}

// Write renders entries to out
func Write(out io.Writer, entries []Entry, opts Options) error {
	_, err := io.WriteString(out, Render(entries, opts))
	return err
}
