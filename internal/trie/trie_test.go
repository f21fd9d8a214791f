package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	word    string
	payload string
}

func buildTrie(entries ...entry) *Trie {
	t := New()
	for _, e := range entries {
		t.Insert(e.word, e.payload)
	}
	return t
}

func TestEqCorrectness(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		setup    func() (*Trie, *Trie)
		expectEq bool
	}{
		{
			name: "identical_empty_tries",
			setup: func() (*Trie, *Trie) {
				return New(), New()
			},
			expectEq: true,
		},
		{
			name: "identical_single_word",
			setup: func() (*Trie, *Trie) {
				return buildTrie(entry{"abc", "A"}), buildTrie(entry{"abc", "A"})
			},
			expectEq: true,
		},
		{
			name: "different_words",
			setup: func() (*Trie, *Trie) {
				return buildTrie(entry{"abc", "A"}), buildTrie(entry{"abd", "A"})
			},
			expectEq: false,
		},
		{
			name: "different_payloads",
			setup: func() (*Trie, *Trie) {
				return buildTrie(entry{"abc", "A"}), buildTrie(entry{"abc", "B"})
			},
			expectEq: false,
		},
		{
			name: "different_sibling_order",
			setup: func() (*Trie, *Trie) {
				return buildTrie(entry{"ab", "A"}, entry{"ac", "C"}),
					buildTrie(entry{"ac", "C"}, entry{"ab", "A"})
			},
			expectEq: false,
		},
		{
			name: "prefix_not_terminal",
			setup: func() (*Trie, *Trie) {
				return buildTrie(entry{"abc", "A"}, entry{"ab", "B"}),
					buildTrie(entry{"abc", "A"})
			},
			expectEq: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			t1, t2 := tt.setup()
			assert.Equal(t, tt.expectEq, t1.Eq(t2))
		})
	}
}

func TestInsertSharesPrefixes(t *testing.T) {
	t.Parallel()
	tr := buildTrie(entry{"val", "TOK_VAL"}, entry{"var", "TOK_VAR"})

	assert.Equal(t, "v(a(l(*)r(*)))", tr.String())
	assert.Equal(t, 4, tr.Size())
	assert.Equal(t, 3, tr.Depth())

	root := tr.Children(Root)
	require.Len(t, root, 1)
	assert.Equal(t, byte('v'), tr.Key(root[0]))

	_, ok := tr.Payload(root[0])
	assert.False(t, ok, "prefix node must not carry a payload")
}

func TestInsertKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	tr := buildTrie(
		entry{"i8", "I8"},
		entry{"i16", "I16"},
		entry{"u8", "U8"},
		entry{"f32", "F32"},
		entry{"i1", "I1"},
	)

	assert.Equal(t, "i(8(*)1(*6(*)))u(8(*))f(3(2(*)))", tr.String())
}

func TestInsertDuplicateOverwrites(t *testing.T) {
	t.Parallel()
	tr := New()

	_, replaced := tr.Insert("if", "FIRST")
	assert.False(t, replaced)

	previous, replaced := tr.Insert("if", "SECOND")
	assert.True(t, replaced)
	assert.Equal(t, "FIRST", previous)

	var leaf NodeIndex
	tr.Walk(func(n NodeIndex, depth int) {
		if depth == 2 {
			leaf = n
		}
	})
	payload, ok := tr.Payload(leaf)
	require.True(t, ok)
	assert.Equal(t, "SECOND", payload)
	assert.Equal(t, 2, tr.Size())
}

func TestInsertIsCaseSensitive(t *testing.T) {
	t.Parallel()
	tr := buildTrie(entry{"If", "UPPER"}, entry{"if", "LOWER"})

	assert.Equal(t, "I(f(*))i(f(*))", tr.String())
}

func TestEmptyTrie(t *testing.T) {
	t.Parallel()
	tr := New()

	assert.Equal(t, 0, tr.Size())
	assert.Equal(t, 0, tr.Depth())
	assert.Empty(t, tr.Children(Root))
	assert.Equal(t, "", tr.String())

	_, ok := tr.Payload(Root)
	assert.False(t, ok)
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()
	tr := buildTrie(entry{"if", "IF"}, entry{"i1", "I1"}, entry{"do", "DO"})

	var visited []string
	tr.Walk(func(n NodeIndex, depth int) {
		if n == Root {
			visited = append(visited, "*")
			return
		}
		visited = append(visited, string(rune('0'+depth))+string(tr.Key(n)))
	})

	assert.Equal(t, []string{"*", "1i", "2f", "21", "1d", "2o"}, visited)
}

func TestDirectArenaOperations(t *testing.T) {
	t.Parallel()
	a := newArena()

	words := []string{"abc", "abd", "ae", "f"}
	for _, w := range words {
		a.insert(w, w)
	}

	assert.Equal(t, "a(b(c(*)d(*))e(*))f(*)", a.string())

	b := newArena()
	for _, w := range words {
		b.insert(w, w)
	}
	assert.True(t, a.eq(b), "inserted same words but arena is not equal")
}
