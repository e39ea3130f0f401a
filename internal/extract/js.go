package extract

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// JSParser collects string contents from JavaScript and JSX sources
type JSParser struct {
	parser        *sitter.Parser
	fragmentQuery *sitter.Query
}

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// jsPool must not set New: ClosePool drains it until Get returns nil
var jsPool sync.Pool

func newJSParser() *JSParser {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(jsLang); err != nil {
		panic(fmt.Sprintf("failed to set JS language: %v", err))
	}

	// string_fragment appears in string literals, JSX attribute strings
	// and between the ${...} substitutions of template strings
	fragmentQuery, qerr := sitter.NewQuery(jsLang, `(string_fragment) @fragment`)
	if qerr != nil {
		panic(fmt.Sprintf("failed to compile fragment query: %v", qerr))
	}

	return &JSParser{parser: parser, fragmentQuery: fragmentQuery}
}

// AcquireJSParser gets a parser from the pool
func AcquireJSParser() *JSParser {
	if p, ok := jsPool.Get().(*JSParser); ok {
		p.parser.Reset()
		return p
	}
	return newJSParser()
}

// ReleaseJSParser returns a parser to the pool
func ReleaseJSParser(p *JSParser) {
	if p != nil {
		jsPool.Put(p)
	}
}

// close releases the tree-sitter resources
func (p *JSParser) close() {
	if p.parser != nil {
		p.parser.Close()
	}
	if p.fragmentQuery != nil {
		p.fragmentQuery.Close()
	}
}

// StringFragments returns the literal text of every string and template
// fragment. clean is false when the tree contains syntax errors.
func (p *JSParser) StringFragments(source []byte) (fragments []string, clean bool) {
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, false
	}
	defer tree.Close()

	root := tree.RootNode()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.fragmentQuery, root, source)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			fragments = append(fragments, string(source[capture.Node.StartByte():capture.Node.EndByte()]))
		}
	}
	return fragments, !root.HasError()
}
