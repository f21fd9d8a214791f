// Package emit turns a keyword trie into a decision structure and renders
// that structure as the body of a C classifier function.
//
// The structure mirrors the generated code statement for statement, so it
// can be evaluated directly (see Classify) to check what the rendered
// function would return for a given input.
package emit

// Stmt is a statement of the generated classifier body.
type Stmt interface {
	stmt()
}

// Block is a sequence of statements executed in order.
type Block []Stmt

// Switch dispatches on the character at Pos. Each case runs its body and
// then leaves the switch. When Terminal is set, the end of the input at Pos
// returns its payload.
type Switch struct {
	Pos      int
	Cases    []Case
	Terminal *Return
}

// Case is one arm of a Switch.
type Case struct {
	Char byte
	Body Block
}

// Guard runs Body when the character at Pos equals Char.
type Guard struct {
	Pos  int
	Char byte
	Body Block
}

// Accept returns Payload when the input ends at Pos.
type Accept struct {
	Pos     int
	Payload string
}

// Compare returns Payload when the whole input equals Word.
type Compare struct {
	Word    string
	Payload string
}

// Return yields Payload unconditionally.
type Return struct {
	Payload string
}

func (Switch) stmt()  {}
func (Guard) stmt()   {}
func (Accept) stmt()  {}
func (Compare) stmt() {}
func (Return) stmt()  {}
