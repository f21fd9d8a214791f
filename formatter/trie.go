package formatter

import (
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/kwgen/internal/trie"
)

const indentWidth = 2

var (
	rootStyle    = color.New(color.FgCyan, color.Bold)
	keyStyle     = color.New(color.FgYellow, color.Bold)
	prefixStyle  = color.New(color.FgHiBlack)
	arrowStyle   = color.New(color.FgHiBlue, color.Bold)
	payloadStyle = color.New(color.FgGreen)
	missStyle    = color.New(color.FgRed, color.Bold)
)

// FormatTrie renders t as an indented tree, one node per line. Nodes that
// end a keyword show the keyword and its payload.
func FormatTrie(t *trie.Trie) string {
	var builder strings.Builder
	var prefix []byte

	t.Walk(func(n trie.NodeIndex, depth int) {
		if depth == 0 {
			builder.WriteString(rootStyle.Sprint("*"))
			builder.WriteString(prefixStyle.Sprintf(" (%d nodes, depth %d)\n", t.Size(), t.Depth()))
			return
		}

		prefix = append(prefix[:depth-1], t.Key(n))

		builder.WriteString(strings.Repeat(" ", depth*indentWidth))
		builder.WriteString(keyStyle.Sprint(string(t.Key(n))))
		if payload, ok := t.Payload(n); ok {
			builder.WriteString(prefixStyle.Sprintf("  %s", prefix))
			builder.WriteString(arrowStyle.Sprint(" => "))
			builder.WriteString(payloadStyle.Sprint(payload))
		}
		builder.WriteString("\n")
	})

	return builder.String()
}

// FormatClassification renders the result of classifying word.
func FormatClassification(word, payload string, ok bool) string {
	if !ok {
		return keyStyle.Sprintf("%q", word) + arrowStyle.Sprint(" => ") + missStyle.Sprint("identifier") + "\n"
	}
	return keyStyle.Sprintf("%q", word) + arrowStyle.Sprint(" => ") + payloadStyle.Sprint(payload) + "\n"
}
