package emit

import (
	"github.com/gnolang/kwgen/internal/trie"
)

// Tree builds the nested decision structure for t. Each keyword is
// recognized in at most as many character tests as its length, and
// keywords sharing a prefix share the tests for that prefix.
func Tree(t *trie.Trie) Block {
	return tree(t, trie.Root, 0)
}

// tree emits the statements recognizing every keyword below n, given that
// the first depth characters already matched the path to n.
func tree(t *trie.Trie, n trie.NodeIndex, depth int) Block {
	children := t.Children(n)
	payload, terminal := t.Payload(n)

	switch len(children) {
	case 0:
		// only the root of an empty trie has neither children nor payload
		if !terminal {
			return nil
		}
		return Block{Accept{Pos: depth, Payload: payload}}

	case 1:
		var block Block
		if terminal {
			block = append(block, Accept{Pos: depth, Payload: payload})
		}
		child := children[0]
		return append(block, Guard{
			Pos:  depth,
			Char: t.Key(child),
			Body: tree(t, child, depth+1),
		})

	default:
		sw := Switch{
			Pos:   depth,
			Cases: make([]Case, 0, len(children)),
		}
		for _, child := range children {
			sw.Cases = append(sw.Cases, Case{
				Char: t.Key(child),
				Body: tree(t, child, depth+1),
			})
		}
		if terminal {
			sw.Terminal = &Return{Payload: payload}
		}
		return Block{sw}
	}
}
