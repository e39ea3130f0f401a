package variants

import "strings"

// Expand rewrites variant groups into plain class lists:
//
//	hover:(bg-a text-b)        -> hover:bg-a hover:text-b
//	md:(p-4 hover:(bg-a b))    -> md:p-4 md:hover:bg-a md:hover:b
//
// A group whose parentheses never close is copied through unchanged.
func Expand(s string) string {
	if !strings.Contains(s, ":(") {
		return s
	}

	var b strings.Builder
	i := 0
	for i < len(s) {
		rel := strings.Index(s[i:], ":(")
		if rel < 0 {
			b.WriteString(s[i:])
			break
		}
		colon := i + rel

		start := colon
		for start > i && isPrefixByte(s[start-1]) {
			start--
		}
		if start == colon {
			b.WriteString(s[i : colon+2])
			i = colon + 2
			continue
		}

		end := matchParen(s, colon+1)
		if end < 0 {
			b.WriteString(s[i:])
			break
		}

		b.WriteString(s[i:start])
		prefix := s[start:colon]
		for k, item := range strings.Fields(Expand(s[colon+2 : end])) {
			if k > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(prefix)
			b.WriteByte(':')
			b.WriteString(item)
		}
		i = end + 1
	}
	return b.String()
}

// matchParen returns the index of the parenthesis closing the one at open,
// or -1
func matchParen(s string, open int) int {
	depth := 0
	for j := open; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func isPrefixByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == ':'
}
