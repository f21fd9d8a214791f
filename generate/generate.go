// Package generate turns a keyword table into the source of a C function
// that maps a null-terminated string to its keyword token, falling back to
// an identifier token.
package generate

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/gnolang/kwgen/internal/emit"
	"github.com/gnolang/kwgen/internal/trie"
	"github.com/gnolang/kwgen/table"
)

// Options controls what Source produces.
type Options struct {
	// Dump prefixes the function with a comment dump of the trie.
	Dump bool
	// Linear emits one whole-string comparison per keyword instead of the
	// nested decision tree.
	Linear bool
	// Strict rejects empty, NUL-containing and duplicate keywords instead
	// of letting the last duplicate win.
	Strict bool
}

// Build inserts every entry of tbl into a new trie, in table order.
func Build(tbl table.Table, strict bool, logger *zap.Logger) (*trie.Trie, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tbl = tbl.WithDefaults()

	if strict {
		if err := tbl.Validate(); err != nil {
			return nil, fmt.Errorf("invalid keyword table: %w", err)
		}
	}

	t := trie.New()
	for _, e := range tbl.Entries {
		payload, err := tbl.Fragment(e)
		if err != nil {
			return nil, err
		}
		if previous, replaced := t.Insert(e.Word, payload); replaced {
			logger.Warn("Duplicate keyword overrides earlier entry",
				zap.String("word", e.Word),
				zap.String("previous", previous),
				zap.String("payload", payload))
		}
	}

	logger.Debug("Built keyword trie",
		zap.Int("entries", len(tbl.Entries)),
		zap.Int("nodes", t.Size()),
		zap.Int("depth", t.Depth()))

	return t, nil
}

// Block returns the decision structure for t chosen by opts.
func Block(t *trie.Trie, opts Options) emit.Block {
	if opts.Linear {
		return emit.Linear(t)
	}
	return emit.Tree(t)
}

// Source returns the complete generated text for tbl.
func Source(tbl table.Table, opts Options, logger *zap.Logger) (string, error) {
	tbl = tbl.WithDefaults()
	t, err := Build(tbl, opts.Strict, logger)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if opts.Dump {
		emit.WriteDump(&sb, t)
	}
	fmt.Fprintf(&sb, "static inline %s %s(const char* str, %s loc) {\n", tbl.TokenType, tbl.Function, tbl.LocType)
	emit.WriteC(&sb, Block(t, opts), 1)
	fmt.Fprintf(&sb, "    return %s;\n", tbl.Identifier)
	sb.WriteString("}\n")

	return sb.String(), nil
}

// Run generates the classifier for tbl and writes it to w in one write.
// Nothing is written when generation fails.
func Run(w io.Writer, tbl table.Table, opts Options, logger *zap.Logger) error {
	src, err := Source(tbl, opts, logger)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, src); err != nil {
		return fmt.Errorf("writing generated source: %w", err)
	}
	return nil
}
