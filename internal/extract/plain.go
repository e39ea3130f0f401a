package extract

import (
	"strings"

	"bennypowers.dev/tuc/internal/collections"
	"bennypowers.dev/tuc/internal/variants"
)

// isDelimiter reports the characters that separate candidates in files
// with no dedicated parser
func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '"', '\'', '`', ';', '{', '}', '<', '>', '=', ',':
		return true
	}
	return false
}

// Split tokenizes arbitrary content into candidates
func Split(content []byte) collections.Set[string] {
	out := collections.NewSet[string]()
	for _, f := range strings.FieldsFunc(variants.Expand(string(content)), isDelimiter) {
		out.Add(f)
	}
	return out
}
