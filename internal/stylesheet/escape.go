package stylesheet

import (
	"fmt"
	"strings"
)

// Escape makes a class name safe to use as a CSS identifier, following the
// CSS.escape() algorithm: md:bg-x/50 becomes md\:bg-x\/50
func Escape(class string) string {
	var b strings.Builder
	for i, r := range class {
		switch {
		case r == 0:
			b.WriteRune('�')
		case r >= '0' && r <= '9' && (i == 0 || i == 1 && class[0] == '-'):
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r == '-' && len(class) == 1:
			b.WriteString(`\-`)
		case r >= 0x80, r == '-', r == '_',
			r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
