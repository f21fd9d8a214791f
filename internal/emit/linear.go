package emit

import (
	"github.com/gnolang/kwgen/internal/trie"
)

// Linear builds a flat list of whole-string comparisons, one per keyword,
// in depth-first insertion order. It matches exactly what Tree matches
// but shares no work between keywords.
func Linear(t *trie.Trie) Block {
	var block Block
	linear(t, trie.Root, nil, &block)
	return block
}

func linear(t *trie.Trie, n trie.NodeIndex, prefix []byte, block *Block) {
	if payload, ok := t.Payload(n); ok {
		*block = append(*block, Compare{Word: string(prefix), Payload: payload})
	}
	for _, child := range t.Children(n) {
		linear(t, child, append(prefix, t.Key(child)), block)
	}
}
