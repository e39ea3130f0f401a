package tokens

import (
	"fmt"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// CSSParser reads custom property declarations from stylesheets
type CSSParser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// cssPool must not set New: ClosePool drains it until Get returns nil
var cssPool sync.Pool

func newCSSParser() *CSSParser {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(cssLang); err != nil {
		panic(fmt.Sprintf("failed to set CSS language: %v", err))
	}
	return &CSSParser{parser: parser}
}

// AcquireCSSParser gets a parser from the pool
func AcquireCSSParser() *CSSParser {
	if p, ok := cssPool.Get().(*CSSParser); ok {
		p.parser.Reset()
		return p
	}
	return newCSSParser()
}

// ReleaseCSSParser returns a parser to the pool
func ReleaseCSSParser(p *CSSParser) {
	if p != nil {
		cssPool.Put(p)
	}
}

// ClosePool closes every pooled CSS parser
func ClosePool() {
	for {
		p, ok := cssPool.Get().(*CSSParser)
		if !ok {
			return
		}
		p.close()
	}
}

// close releases the tree-sitter parser
func (p *CSSParser) close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// CustomProperties returns every "--name: value" declaration in source
// order. Values are the raw text after the colon, without !important.
func (p *CSSParser) CustomProperties(source []byte) ([]Definition, error) {
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse CSS")
	}
	defer tree.Close()

	var defs []Definition
	walkDeclarations(tree.RootNode(), source, &defs)
	return defs, nil
}

func walkDeclarations(node *sitter.Node, source []byte, defs *[]Definition) {
	if node == nil {
		return
	}
	if node.Kind() == "declaration" {
		if d, ok := customProperty(node, source); ok {
			*defs = append(*defs, d)
		}
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		walkDeclarations(node.Child(i), source, defs)
	}
}

// customProperty reads a declaration node whose property starts with --
func customProperty(node *sitter.Node, source []byte) (Definition, bool) {
	var name string
	var valueStart, valueEnd uint
	afterColon, hasValue := false, false

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch kind := child.Kind(); {
		case kind == "property_name":
			name = string(source[child.StartByte():child.EndByte()])
		case kind == ":":
			afterColon = true
		case kind == ";" || kind == "important":
			// not part of the value
		case afterColon:
			if !hasValue {
				valueStart = child.StartByte()
				hasValue = true
			}
			valueEnd = child.EndByte()
		}
	}

	if !strings.HasPrefix(name, "--") {
		return Definition{}, false
	}

	value := ""
	if hasValue {
		value = strings.TrimSpace(string(source[valueStart:valueEnd]))
	}
	d := Definition{Name: name, Value: value, Kind: FromCSS}
	if hex, ok := NormalizeColor(value); ok {
		d.Hex = hex
	}
	return d, true
}
