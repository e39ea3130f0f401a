package extract

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// HTMLParser finds class attribute values in HTML
type HTMLParser struct {
	parser     *sitter.Parser
	classQuery *sitter.Query
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// htmlPool must not set New: ClosePool drains it until Get returns nil
var htmlPool sync.Pool

func newHTMLParser() *HTMLParser {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(htmlLang); err != nil {
		panic(fmt.Sprintf("failed to set HTML language: %v", err))
	}

	classQuery, qerr := sitter.NewQuery(htmlLang, `
		(attribute
			(attribute_name) @attr_name
			[
				(quoted_attribute_value (attribute_value) @attr_value)
				(attribute_value) @attr_value
			]
			(#eq? @attr_name "class"))
	`)
	if qerr != nil {
		panic(fmt.Sprintf("failed to compile class query: %v", qerr))
	}

	return &HTMLParser{parser: parser, classQuery: classQuery}
}

// AcquireHTMLParser gets a parser from the pool
func AcquireHTMLParser() *HTMLParser {
	if p, ok := htmlPool.Get().(*HTMLParser); ok {
		p.parser.Reset()
		return p
	}
	return newHTMLParser()
}

// ReleaseHTMLParser returns a parser to the pool
func ReleaseHTMLParser(p *HTMLParser) {
	if p != nil {
		htmlPool.Put(p)
	}
}

// close releases the tree-sitter resources
func (p *HTMLParser) close() {
	if p.parser != nil {
		p.parser.Close()
	}
	if p.classQuery != nil {
		p.classQuery.Close()
	}
}

// ClassValues returns the raw value of every class attribute in document order
func (p *HTMLParser) ClassValues(source []byte) []string {
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	var values []string
	names := p.classQuery.CaptureNames()
	matches := cursor.Matches(p.classQuery, tree.RootNode(), source)
	for match := matches.Next(); match != nil; match = matches.Next() {
		var name, value string
		for _, capture := range match.Captures {
			text := string(source[capture.Node.StartByte():capture.Node.EndByte()])
			switch names[capture.Index] {
			case "attr_name":
				name = text
			case "attr_value":
				value = text
			}
		}
		if name == "class" && value != "" {
			values = append(values, value)
		}
	}
	return values
}
