package brace

import (
	"github.com/arma2d0/uncrustify/internal/format/chunk"
	"github.com/arma2d0/uncrustify/internal/format/frame"
)

func (c *Cleaner) insertVBraceOpenBefore(pc *chunk.Chunk, frm *frame.Frame) *chunk.Chunk {
	return c.insertVBrace(pc, false, frm)
}

func (c *Cleaner) insertVBraceCloseAfter(pc *chunk.Chunk, frm *frame.Frame) *chunk.Chunk {
	return c.insertVBrace(pc, true, frm)
}

// insertVBrace synthesizes one virtual brace chunk next to pc.
//
// A close lands directly after pc. An open is anchored by rewinding from
// pc past comments and newlines, bumping their levels so they attach
// inside the virtual block, and never backing from regular code into a
// preprocessor directive (or out of one).
func (c *Cleaner) insertVBrace(pc *chunk.Chunk, after bool, frm *frame.Frame) *chunk.Chunk {
	nc := &chunk.Chunk{
		ParentKind: frm.Top().Kind,
		Line:       pc.Line,
		Level:      frm.Level,
		BraceLevel: frm.BraceLevel,
		PPLevel:    pc.PPLevel,
		Flags:      pc.Flags & chunk.CopyFlags,
	}

	if after {
		nc.Col = pc.Col
		nc.Kind = chunk.VBraceClose
		return c.list.AddAfter(nc, pc)
	}
	ref := pc.Prev()

	if ref.IsNull() {
		return chunk.Null
	}

	if !ref.Has(chunk.FlagInPreproc) {
		nc.ClearFlags(chunk.FlagInPreproc)
	}
	refIsComment := ref.IsComment()

	for ref.IsCommentOrNewline() {
		ref.Level++
		ref.BraceLevel++
		ref = ref.Prev()
	}

	if ref.IsNull() {
		return chunk.Null
	}

	// Don't back into a preprocessor.
	if !pc.Has(chunk.FlagInPreproc) && ref.Has(chunk.FlagInPreproc) {
		if ref.Is(chunk.PreprocBody) {
			for !ref.IsNull() && ref.Has(chunk.FlagInPreproc) {
				ref = ref.Prev()
			}
		} else {
			ref = ref.Next()

			if ref.Is(chunk.Comment) {
				ref = ref.NextNc()
			}
		}
	}

	if refIsComment {
		ref = ref.Next()
	}

	if ref.IsNull() {
		return chunk.Null
	}
	nc.Line = ref.Line
	nc.Col = ref.Col
	nc.Column = ref.Column + len(ref.Text) + 1
	nc.PPLevel = ref.PPLevel
	nc.Kind = chunk.VBraceOpen

	return c.list.AddAfter(nc, ref)
}
