package emit

import (
	"strings"

	"github.com/gnolang/kwgen/internal/trie"
)

// WriteDump writes one comment line per trie node, depth-first. The root is
// rendered as "// *" and every other node as "// |" followed by one dash
// per level and its character.
func WriteDump(sb *strings.Builder, t *trie.Trie) {
	t.Walk(func(n trie.NodeIndex, depth int) {
		if depth == 0 {
			sb.WriteString("// *\n")
			return
		}
		sb.WriteString("// |")
		sb.WriteString(strings.Repeat("-", depth))
		sb.WriteByte(' ')
		sb.WriteByte(t.Key(n))
		sb.WriteByte('\n')
	})
}
