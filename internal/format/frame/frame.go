// Package frame implements the parse frame of the brace-cleanup pass: a
// stack of open brackets and in-flight complex statements, with the
// counters that give every token its nesting levels. A frame list layered
// on top snapshots frames across preprocessor branches.
package frame

import (
	"github.com/arma2d0/uncrustify/internal/format/chunk"
)

// Stage is the cursor of a complex statement, selecting which token the
// state machine expects next.
type Stage int

const (
	StageNone      Stage = iota
	StageParen1          // expect '('
	StageOpParen1        // optional '(': WHEN, D version/scope
	StageBrace2          // expect '{' or any token starting a virtual block
	StageBraceDo         // expect '{' after do
	StageElse            // expect 'else' after an if body
	StageElseIf          // expect 'if' right after 'else'
	StageWhile           // expect 'while' after a do body
	StageCatch           // expect 'catch' or 'finally' after a try body
	StageCatchWhen       // C#: optional '(' or 'when' after catch
	StageWodParen        // expect '(' after the while of a do-while
	StageWodSemi         // expect ';' after while (...) of a do-while
)

var stageNames = map[Stage]string{
	StageNone:      "NONE",
	StageParen1:    "PAREN1",
	StageOpParen1:  "OP_PAREN1",
	StageBrace2:    "BRACE2",
	StageBraceDo:   "BRACE_DO",
	StageElse:      "ELSE",
	StageElseIf:    "ELSEIF",
	StageWhile:     "WHILE",
	StageCatch:     "CATCH",
	StageCatchWhen: "CATCH_WHEN",
	StageWodParen:  "WOD_PAREN",
	StageWodSemi:   "WOD_SEMI",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "STAGE?"
}

// Entry describes one open bracket or complex statement on the stack.
type Entry struct {
	Kind   chunk.Kind  // the opener's kind
	Parent chunk.Kind  // kind to stamp onto the matching closer
	Stage  Stage       // state-machine cursor, StageNone for plain brackets
	Open   *chunk.Chunk // opener chunk; diagnostics and parent linking only
}

// Frame is the active parser state: the entry stack plus counters.
// stack[0] is an EOF sentinel so Top is always valid.
type Frame struct {
	stack []Entry

	Level       int // open brackets of every kind
	BraceLevel  int // curly braces only
	SparenCount int // SPAREN_OPEN entries currently on the stack
	StmtCount   int
	ExprCount   int

	// Ifdef tracks which preprocessor branch this frame is in, so the
	// frame list knows whether an #else has already swapped state.
	Ifdef chunk.Kind
}

// New returns a frame holding only the EOF sentinel.
func New() *Frame {
	f := &Frame{}
	f.stack = append(f.stack, Entry{Kind: chunk.EOF, Open: chunk.Null})
	return f
}

// Reset empties the frame back to the sentinel and zeroes every counter.
func (f *Frame) Reset() {
	f.stack = f.stack[:0]
	f.stack = append(f.stack, Entry{Kind: chunk.EOF, Open: chunk.Null})
	f.Level = 0
	f.BraceLevel = 0
	f.SparenCount = 0
	f.StmtCount = 0
	f.ExprCount = 0
	f.Ifdef = chunk.None
}

// Size returns the entry count including the sentinel.
func (f *Frame) Size() int {
	return len(f.stack)
}

// Push appends an entry for the opener pc. A null pc produces a blank
// entry whose kind the caller is expected to fill in.
func (f *Frame) Push(pc *chunk.Chunk, stage Stage) {
	e := Entry{Stage: stage, Open: chunk.Null}

	if !pc.IsNull() {
		e.Kind = pc.Kind
		e.Parent = pc.ParentKind
		e.Open = pc
	}
	f.stack = append(f.stack, e)
}

// Pop removes and returns the top entry. Popping the sentinel is a
// programmer error.
func (f *Frame) Pop() Entry {
	if len(f.stack) <= 1 {
		panic("frame: pop would remove the EOF sentinel")
	}
	top := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return top
}

// Top returns the top entry. The sentinel guarantees it exists.
func (f *Frame) Top() *Entry {
	return &f.stack[len(f.stack)-1]
}

// Prev returns the entry just below the top, or the sentinel when the
// stack holds nothing else.
func (f *Frame) Prev() *Entry {
	if len(f.stack) < 2 {
		return &f.stack[0]
	}
	return &f.stack[len(f.stack)-2]
}

// At returns the entry at index i from the bottom; 0 is the sentinel.
func (f *Frame) At(i int) *Entry {
	if i < 0 || i >= len(f.stack) {
		return &f.stack[0]
	}
	return &f.stack[i]
}

// Copy returns a deep copy of the frame for preprocessor snapshots.
func (f *Frame) Copy() *Frame {
	cp := *f
	cp.stack = make([]Entry, len(f.stack))
	copy(cp.stack, f.stack)
	return &cp
}

// Restore overwrites f with the contents of other.
func (f *Frame) Restore(other *Frame) {
	cp := other.Copy()
	*f = *cp
}
