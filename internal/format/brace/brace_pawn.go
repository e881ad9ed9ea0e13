package brace

import (
	"github.com/arma2d0/uncrustify/internal/format/chunk"
)

// Pawn statements may end at a newline instead of a semicolon. These
// default hooks synthesize the terminator the rest of the pipeline
// expects; a fuller language pass can override them.

// vsemiContinuation lists kinds after which a Pawn statement is clearly
// unfinished at a newline, so no virtual semicolon is wanted.
var vsemiContinuation = map[chunk.Kind]bool{
	chunk.Comma:      true,
	chunk.Assign:     true,
	chunk.Arith:      true,
	chunk.Shift:      true,
	chunk.Compare:    true,
	chunk.Bool:       true,
	chunk.Star:       true,
	chunk.Minus:      true,
	chunk.Plus:       true,
	chunk.Caret:      true,
	chunk.Not:        true,
	chunk.Inv:        true,
	chunk.Question:   true,
	chunk.Colon:      true,
	chunk.Semicolon:  true,
	chunk.VSemicolon: true,
	chunk.ParenOpen:  true,
	chunk.SParenOpen: true,
	chunk.FParenOpen: true,
	chunk.BraceOpen:  true,
	chunk.VBraceOpen: true,
	chunk.Case:       true,
	chunk.Default:    true,
}

// defaultPawnCheckVSemicolon runs at a newline while the top of the stack
// is a virtual brace. When the statement before the newline is complete,
// a virtual semicolon is inserted and returned so the sweep processes it
// next; otherwise the newline itself is returned.
func (c *Cleaner) defaultPawnCheckVSemicolon(nl *chunk.Chunk) *chunk.Chunk {
	prev := nl.PrevNc()

	if prev.IsNull() || vsemiContinuation[prev.Kind] || prev.Has(chunk.FlagInPreproc) {
		return nl
	}
	return c.defaultPawnAddVSemiAfter(prev)
}

// defaultPawnAddVSemiAfter inserts a virtual semicolon right after pc.
func (c *Cleaner) defaultPawnAddVSemiAfter(pc *chunk.Chunk) *chunk.Chunk {
	nc := &chunk.Chunk{
		Kind:       chunk.VSemicolon,
		Line:       pc.Line,
		Col:        pc.Col,
		Level:      pc.Level,
		BraceLevel: pc.BraceLevel,
		PPLevel:    pc.PPLevel,
		Flags:      pc.Flags & chunk.CopyFlags,
	}
	return c.list.AddAfter(nc, pc)
}
