// Package extract pulls candidate utility class names out of source files.
//
// HTML files contribute the values of their class attributes. JavaScript,
// JSX and TSX files contribute every string literal and template string
// fragment, which covers className="..." as well as strings passed to
// helpers like clsx. Other files fall back to splitting on whitespace and
// quote characters. Variant groups are expanded before splitting.
package extract

import (
	"path/filepath"
	"strings"

	"bennypowers.dev/tuc/internal/collections"
	"bennypowers.dev/tuc/internal/variants"
)

// Language selects the extraction strategy for a file
type Language int

const (
	// Plain files are split on delimiter characters
	Plain Language = iota
	// HTML files are parsed with tree-sitter-html
	HTML
	// JavaScript covers js, jsx, ts and tsx, parsed with tree-sitter-javascript
	JavaScript
)

var extensions = map[string]Language{
	".html": HTML,
	".htm":  HTML,
	".js":   JavaScript,
	".jsx":  JavaScript,
	".mjs":  JavaScript,
	".cjs":  JavaScript,
	".ts":   JavaScript,
	".tsx":  JavaScript,
}

// LanguageFor picks the strategy from the file extension
func LanguageFor(path string) Language {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Candidates returns the distinct class-name candidates found in content
func Candidates(path string, content []byte) collections.Set[string] {
	out := collections.NewSet[string]()

	switch LanguageFor(path) {
	case HTML:
		p := AcquireHTMLParser()
		defer ReleaseHTMLParser(p)
		for _, s := range p.ClassValues(content) {
			addFields(out, s)
		}
	case JavaScript:
		p := AcquireJSParser()
		defer ReleaseJSParser(p)
		fragments, clean := p.StringFragments(content)
		for _, s := range fragments {
			addFields(out, s)
		}
		// TypeScript syntax the JavaScript grammar cannot parse may hide
		// strings inside ERROR nodes, so take the plain split as well.
		if !clean {
			out.Merge(Split(content))
		}
	default:
		out.Merge(Split(content))
	}

	return out
}

// ClosePool closes every pooled HTML and JavaScript parser. Parsers
// acquired afterwards are created fresh.
func ClosePool() {
	for {
		p, ok := htmlPool.Get().(*HTMLParser)
		if !ok {
			break
		}
		p.close()
	}
	for {
		p, ok := jsPool.Get().(*JSParser)
		if !ok {
			break
		}
		p.close()
	}
}

// addFields expands variant groups in s and adds each whitespace-separated
// field
func addFields(out collections.Set[string], s string) {
	for _, f := range strings.Fields(variants.Expand(s)) {
		out.Add(f)
	}
}
