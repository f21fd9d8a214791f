package trie

import (
	"strings"
)

/*
Arena-based Keyword Trie

Nodes live in a single slice owned by the Trie and are referenced by index,
so the whole tree is one allocation that grows by appending. Each node
represents one byte position shared by every keyword with the same prefix.

	- The root is index 0 and has no key.
	- Children are kept in the order they were first introduced. Emitters
	  walk them in that order, so generated code is stable for a given
	  insertion order.
	- A node carries a payload only when some inserted keyword ends there.
*/

// NodeIndex represents the index of a trie node.
type NodeIndex int

// Root is the index of the empty-prefix node.
const Root NodeIndex = 0

// arenaNode is the internal representation of a trie node stored in the arena.
type arenaNode struct {
	key byte
	// children in insertion order. Keys are unique among siblings.
	children []NodeIndex
	payload  string
	terminal bool
}

// arena is a memory pool that stores all trie nodes.
type arena struct {
	nodes []arenaNode
}

func newArena() *arena {
	a := &arena{
		nodes: make([]arenaNode, 0, 256),
	}
	a.nodes = append(a.nodes, arenaNode{})
	return a
}

func (a *arena) newNode(key byte) NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode{key: key})
	return idx
}

func (a *arena) child(idx NodeIndex, key byte) (NodeIndex, bool) {
	for _, c := range a.nodes[idx].children {
		if a.nodes[c].key == key {
			return c, true
		}
	}
	return 0, false
}

// insert descends from the root, creating missing children, and sets the
// payload on the final node. The previous payload is returned when the word
// was already present.
func (a *arena) insert(word, payload string) (string, bool) {
	current := Root

	for i := 0; i < len(word); i++ {
		next, exists := a.child(current, word[i])
		if !exists {
			next = a.newNode(word[i])
			a.nodes[current].children = append(a.nodes[current].children, next)
		}
		current = next
	}

	node := &a.nodes[current]
	previous, replaced := node.payload, node.terminal
	node.payload = payload
	node.terminal = true
	return previous, replaced
}

func (a *arena) eq(b *arena) bool {
	if len(a.nodes) != len(b.nodes) {
		return false
	}
	return a.eqNodes(Root, b, Root)
}

// eqNodes compares two subtrees. Sibling order is part of the structure
// since it decides the emitted layout.
func (a *arena) eqNodes(aIdx NodeIndex, b *arena, bIdx NodeIndex) bool {
	nodeA := a.nodes[aIdx]
	nodeB := b.nodes[bIdx]

	if nodeA.key != nodeB.key ||
		nodeA.terminal != nodeB.terminal ||
		nodeA.payload != nodeB.payload ||
		len(nodeA.children) != len(nodeB.children) {
		return false
	}

	for i := range nodeA.children {
		if !a.eqNodes(nodeA.children[i], b, nodeB.children[i]) {
			return false
		}
	}
	return true
}

func (a *arena) string() string {
	var sb strings.Builder
	a.writeNode(&sb, Root)
	return sb.String()
}

func (a *arena) writeNode(sb *strings.Builder, idx NodeIndex) {
	node := a.nodes[idx]
	if node.terminal {
		sb.WriteByte('*')
	}
	for _, c := range node.children {
		sb.WriteByte(a.nodes[c].key)
		sb.WriteByte('(')
		a.writeNode(sb, c)
		sb.WriteByte(')')
	}
}

// Trie is a prefix tree over a keyword set. Each complete keyword carries an
// opaque payload.
type Trie struct {
	arena *arena
}

// New returns an empty Trie holding only the root.
func New() *Trie {
	return &Trie{
		arena: newArena(),
	}
}

// Insert adds word to the trie and attaches payload to its final node.
// Inserting a word twice keeps the last payload; the overwritten payload
// and true are returned in that case.
func (t *Trie) Insert(word, payload string) (previous string, replaced bool) {
	return t.arena.insert(word, payload)
}

// Key returns the byte consumed to reach n from its parent. The root's key is 0.
func (t *Trie) Key(n NodeIndex) byte {
	return t.arena.nodes[n].key
}

// Children returns the children of n in insertion order.
// The returned slice must not be modified.
func (t *Trie) Children(n NodeIndex) []NodeIndex {
	return t.arena.nodes[n].children
}

// Payload returns the payload of the keyword ending at n, if any.
func (t *Trie) Payload(n NodeIndex) (string, bool) {
	node := t.arena.nodes[n]
	return node.payload, node.terminal
}

// Size returns the number of nodes below the root.
func (t *Trie) Size() int {
	return len(t.arena.nodes) - 1
}

// Depth returns the length of the longest path from the root.
func (t *Trie) Depth() int {
	deepest := 0
	t.Walk(func(_ NodeIndex, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}

// Walk visits every node depth-first, parents before children and
// children in insertion order. The root is visited at depth 0.
func (t *Trie) Walk(fn func(n NodeIndex, depth int)) {
	t.walk(Root, 0, fn)
}

func (t *Trie) walk(n NodeIndex, depth int, fn func(NodeIndex, int)) {
	fn(n, depth)
	for _, c := range t.arena.nodes[n].children {
		t.walk(c, depth+1, fn)
	}
}

// Eq checks whether two tries have the same structure, sibling order and payloads.
func (t *Trie) Eq(other *Trie) bool {
	return t.arena.eq(other.arena)
}

// String returns a compact representation for debugging, e.g. "a(b(*)c(*))".
func (t *Trie) String() string {
	return t.arena.string()
}
