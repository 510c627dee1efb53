package comment

import (
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
)

// formatPosition creates a human readable string representing the position of a foreign
// declaration. In order to improve readability, the filename is made relative to root when
// it lies inside it. The format of the string is as follows based on the positional info available:
//
// Info 					|		Formatting
// ------------------------------------------------------------------
// filename, line, column	|	filename:line:column
// filename, line			|	filename:line
// filename					|	filename
// invalid or empty			|	""
func formatPosition(pos token.Position, root string) string {
	if pos.Filename == "" {
		return ""
	}

	name := pos.Filename
	if root != "" {
		if rel, err := filepath.Rel(root, name); err == nil && !strings.HasPrefix(rel, "..") {
			name = rel
		}
	}

	b := strings.Builder{}
	b.WriteString(name)
	if pos.Line > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(pos.Line))
		if pos.Column > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(pos.Column))
		}
	}
	return b.String()
}
