package table

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyKeyword     = errors.New("empty keyword")
	ErrNulInKeyword     = errors.New("keyword contains NUL")
	ErrDuplicateKeyword = errors.New("duplicate keyword")
	ErrUnknownKind      = errors.New("entry needs exactly one of token, bool or payload")
)

const (
	DefaultFunction   = "tok_from_str"
	DefaultTokenType  = "tok_t"
	DefaultLocType    = "loc_t"
	DefaultIdentifier = "(tok_t) { .tag = TOK_ID, .str = str, .loc = loc }"
	DefaultBoolTag    = "TOK_BLT"
)

// Table is the ordered keyword table the classifier is generated from,
// together with the names used in the function signature.
type Table struct {
	Function   string `yaml:"function"`
	TokenType  string `yaml:"tokenType"`
	LocType    string `yaml:"locType"`
	Identifier string `yaml:"identifier"`
	BoolTag    string `yaml:"boolTag"`
	// Entries are inserted in order. Order decides the layout of the
	// generated code, not what it matches.
	Entries []Entry `yaml:"entries"`
}

// Entry binds a keyword to the token it produces. Exactly one of Token,
// Bool and Payload must be set.
type Entry struct {
	Word string `yaml:"word"`
	// Token is a token tag for a plain keyword.
	Token string `yaml:"token,omitempty"`
	// Bool is the value of a boolean literal keyword.
	Bool *bool `yaml:"bool,omitempty"`
	// Payload is a raw expression spliced as is.
	Payload string `yaml:"payload,omitempty"`
}

// Keyword returns an entry producing a plain keyword token.
func Keyword(word, token string) Entry {
	return Entry{Word: word, Token: token}
}

// Boolean returns an entry producing a boolean literal token.
func Boolean(word string, value bool) Entry {
	return Entry{Word: word, Bool: &value}
}

// Fragment returns the token expression of e.
func (t Table) Fragment(e Entry) (string, error) {
	kinds := 0
	if e.Token != "" {
		kinds++
	}
	if e.Bool != nil {
		kinds++
	}
	if e.Payload != "" {
		kinds++
	}
	if kinds != 1 {
		return "", fmt.Errorf("%q: %w", e.Word, ErrUnknownKind)
	}

	switch {
	case e.Token != "":
		return fmt.Sprintf("(%s) { .tag = %s, .loc = loc }", t.TokenType, e.Token), nil
	case e.Bool != nil:
		return fmt.Sprintf("(%s) { .tag = %s, .loc = loc, .lit = { .bval = %t } }", t.TokenType, t.BoolTag, *e.Bool), nil
	default:
		return e.Payload, nil
	}
}

// WithDefaults fills unset signature fields with the default names.
func (t Table) WithDefaults() Table {
	if t.Function == "" {
		t.Function = DefaultFunction
	}
	if t.TokenType == "" {
		t.TokenType = DefaultTokenType
	}
	if t.LocType == "" {
		t.LocType = DefaultLocType
	}
	if t.Identifier == "" {
		t.Identifier = DefaultIdentifier
	}
	if t.BoolTag == "" {
		t.BoolTag = DefaultBoolTag
	}
	return t
}

// Validate reports empty keywords, keywords containing NUL and duplicate
// keywords. All problems are joined into one error.
func (t Table) Validate() error {
	var errs []error
	seen := make(map[string]int, len(t.Entries))

	for i, e := range t.Entries {
		switch {
		case e.Word == "":
			errs = append(errs, fmt.Errorf("entry %d: %w", i, ErrEmptyKeyword))
		case strings.IndexByte(e.Word, 0) >= 0:
			errs = append(errs, fmt.Errorf("entry %d %q: %w", i, e.Word, ErrNulInKeyword))
		}
		if first, ok := seen[e.Word]; ok {
			errs = append(errs, fmt.Errorf("entry %d %q (first at %d): %w", i, e.Word, first, ErrDuplicateKeyword))
			continue
		}
		seen[e.Word] = i
	}
	return errors.Join(errs...)
}

// Load reads a table from a YAML file. Unset signature fields get their
// default names.
func Load(path string) (Table, error) {
	var t Table

	f, err := os.Open(path)
	if err != nil {
		return t, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&t); err != nil {
		return t, fmt.Errorf("decoding %s: %w", path, err)
	}

	return t.WithDefaults(), nil
}

// Write stores t as YAML at path, replacing any existing file.
func Write(path string, t Table) error {
	d, err := yaml.Marshal(t)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
