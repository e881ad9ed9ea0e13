package brace

import (
	"github.com/arma2d0/uncrustify/internal/format/chunk"
	"github.com/arma2d0/uncrustify/internal/format/frame"
	"github.com/arma2d0/uncrustify/internal/format/option"
)

// checkComplexStatements checks the progression of complex statements:
// else after if, if after else, while after do, catch after try. It
// inserts an open virtual brace when a body starts without '{'. The bool
// result means "done with this chunk".
func (c *Cleaner) checkComplexStatements(frm *frame.Frame, pc *chunk.Chunk) (bool, error) {
	// Turn an optional paren into either a real paren or a brace.
	if frm.Top().Stage == frame.StageOpParen1 {
		if pc.Is(chunk.ParenOpen) {
			frm.Top().Stage = frame.StageParen1
		} else {
			frm.Top().Stage = frame.StageBrace2
		}
	}

	// Check for ELSE after IF.
	for frm.Top().Stage == frame.StageElse {
		if pc.Is(chunk.Else) {
			// Replace IF with ELSE on the stack and we are done.
			frm.Top().Kind = chunk.Else
			frm.Top().Stage = frame.StageElseIf
			return true, nil
		}
		// Remove the IF and close the statement.
		frm.Pop()

		done, err := c.closeStatement(frm, pc)

		if err != nil || done {
			return done, err
		}
	}

	// Check for IF after ELSE.
	if frm.Top().Stage == frame.StageElseIf {
		if (pc.Is(chunk.If) || pc.Is(chunk.ElseIf)) &&
			(!c.opts.IndentElseIf || !pc.PrevNc().IsNewline()) {
			// Fuse into a single ELSEIF.
			pc.Kind = chunk.ElseIf
			frm.Top().Kind = chunk.ElseIf
			frm.Top().Stage = frame.StageParen1
			return true, nil
		}
		// Jump to the 'expecting brace' stage.
		frm.Top().Stage = frame.StageBrace2
	}

	// Check for CATCH or FINALLY after TRY or CATCH.
	for frm.Top().Stage == frame.StageCatch {
		if pc.Is(chunk.Catch) || pc.Is(chunk.Finally) {
			frm.Top().Kind = pc.Kind

			switch {
			case c.lang.Is(option.CS) && pc.Is(chunk.Catch):
				// C# allows a 'when' filter after the catch expression.
				frm.Top().Stage = frame.StageCatchWhen
			case pc.Is(chunk.Catch):
				frm.Top().Stage = frame.StageParen1
			default:
				frm.Top().Stage = frame.StageBrace2
			}
			return true, nil
		}
		// Remove the TRY and close the statement.
		frm.Pop()

		done, err := c.closeStatement(frm, pc)

		if err != nil || done {
			return done, err
		}
	}

	// Check for the optional paren and optional WHEN after a C# CATCH.
	if frm.Top().Stage == frame.StageCatchWhen {
		switch pc.Kind {
		case chunk.ParenOpen:
			pc.Kind = chunk.SParenOpen
			frm.Top().Kind = pc.Kind
			frm.Top().Stage = frame.StageParen1
			return false, nil
		case chunk.When:
			frm.Top().Kind = pc.Kind
			frm.Top().Stage = frame.StageOpParen1
			return true, nil
		case chunk.BraceOpen:
			frm.Top().Stage = frame.StageBrace2
			return false, nil
		}
	}

	// Check for WHILE after DO.
	if frm.Top().Stage == frame.StageWhile {
		if pc.Is(chunk.While) || pc.Is(chunk.WhileOfDo) {
			pc.Kind = chunk.WhileOfDo
			frm.Top().Kind = chunk.WhileOfDo
			frm.Top().Stage = frame.StageWodParen
			return true, nil
		}
		frm.Pop()

		return false, c.structureErrorf(pc.Line,
			"expected 'while', got '%s'", pc.Text)
	}

	// Insert a VBRACE_OPEN if needed, but not in a preprocessor. A
	// virtual brace already in the stream (from a previous run of the
	// pass) serves as the body opener itself.
	if pc.IsNot(chunk.BraceOpen) && pc.IsNot(chunk.VBraceOpen) && !pc.Has(chunk.FlagInPreproc) &&
		(frm.Top().Stage == frame.StageBrace2 || frm.Top().Stage == frame.StageBraceDo) {
		if c.lang.Is(option.CS) && pc.Is(chunk.UsingStmt) && !c.opts.IndentUsingBlock {
			// don't indent the using block
		} else {
			parentKind := frm.Top().Kind

			vbrace := c.insertVBraceOpenBefore(pc, frm)

			if !vbrace.IsNull() {
				vbrace.ParentKind = parentKind

				frm.Level++
				frm.BraceLevel++

				frm.Push(vbrace, frame.StageNone)
				frm.Top().Parent = parentKind

				// Update the level of pc and mark it as a statement start.
				pc.Level = frm.Level
				pc.BraceLevel = frm.BraceLevel

				pc.SetFlags(chunk.FlagStmtStart | chunk.FlagExprStart)
				frm.StmtCount = 1
				frm.ExprCount = 1
			}
		}
	}

	// 'constexpr' may sit between an if and its paren.
	if frm.Top().Stage == frame.StageParen1 &&
		(frm.Top().Kind == chunk.If || frm.Top().Kind == chunk.ElseIf) &&
		pc.Is(chunk.Constexpr) {
		return false, nil
	}

	// Verify the open paren of a complex statement. A statement paren
	// already reclassified by a previous run of the pass is accepted too.
	if pc.IsNot(chunk.ParenOpen) && pc.IsNot(chunk.SParenOpen) &&
		(frm.Top().Stage == frame.StageParen1 || frm.Top().Stage == frame.StageWodParen) {
		kind := frm.Top().Kind
		frm.Pop()

		return false, c.structureErrorf(pc.Line,
			"expected '(', got '%s' for '%s'", pc.Text, kind)
	}
	return false, nil
}

// handleComplexClose progresses the stage when a close paren or brace was
// consumed; if the end of the statement is hit it calls closeStatement.
func (c *Cleaner) handleComplexClose(frm *frame.Frame, pc *chunk.Chunk) (bool, error) {
	switch frm.Top().Stage {
	case frame.StageParen1:
		if pc.Next().Is(chunk.When) {
			frm.Top().Kind = pc.Kind
			frm.Top().Stage = frame.StageCatchWhen
			return true, nil
		}
		// PAREN1 always goes to BRACE2.
		frm.Top().Stage = frame.StageBrace2

	case frame.StageBrace2:
		switch frm.Top().Kind {
		case chunk.If, chunk.ElseIf:
			frm.Top().Stage = frame.StageElse

			// If the next chunk isn't ELSE, close the statement.
			next := pc.NextNcNnl()

			if next.IsNull() || next.IsNot(chunk.Else) {
				frm.Pop()
				return c.closeStatement(frm, pc)
			}
		case chunk.Try, chunk.Catch:
			frm.Top().Stage = frame.StageCatch

			// If the next chunk isn't CATCH or FINALLY, close the statement.
			next := pc.NextNcNnl()

			if next.IsNot(chunk.Catch) && next.IsNot(chunk.Finally) {
				frm.Pop()
				return c.closeStatement(frm, pc)
			}
		default:
			frm.Pop()
			return c.closeStatement(frm, pc)
		}

	case frame.StageBraceDo:
		frm.Top().Stage = frame.StageWhile

	case frame.StageWodParen:
		frm.Top().Stage = frame.StageWodSemi

	case frame.StageWodSemi:
		frm.Pop()
		return c.closeStatement(frm, pc)

	default:
		return false, c.structureErrorf(pc.Line,
			"cannot close '%s' in stage %s", frm.Top().Kind, frm.Top().Stage)
	}
	return false, nil
}

// closeStatement is called when a statement was just closed and the top
// stack entry was just popped.
//
//   - if the top is now a VBRACE_OPEN, insert a VBRACE_CLOSE and recurse;
//   - if the top is a complex statement, progress it via handleComplexClose.
//
// The recursion terminates because each call removes at least one entry.
// The bool result means "done with this chunk".
func (c *Cleaner) closeStatement(frm *frame.Frame, pc *chunk.Chunk) (bool, error) {
	if pc.IsNull() {
		panic("brace: close_statement on a null chunk")
	}

	if c.consumed {
		frm.StmtCount = 0
		frm.ExprCount = 0
	}

	// Insert a VBRACE_CLOSE if needed: in a virtual brace and not on a
	// VBRACE_CLOSE already.
	vbc := pc

	if frm.Top().Kind == chunk.VBraceOpen {
		if c.consumed {
			// The current token was already counted as closing something;
			// the close lands after it and is revisited by the sweep. A
			// close already sitting there came from a previous run.
			if !pc.Next().Is(chunk.VBraceClose) {
				c.insertVBraceCloseAfter(pc, frm)
			}
		} else {
			// Add the close before the current token and consume the vbrace.
			vbc = pc.PrevNcNnl()

			frm.Level--
			frm.BraceLevel--

			vbc = c.insertVBraceCloseAfter(vbc, frm)

			if !vbc.IsNull() {
				vbc.ParentKind = frm.Top().Parent
			}

			frm.Pop()

			// Update the token level.
			pc.Level = frm.Level
			pc.BraceLevel = frm.BraceLevel

			// And repeat the close.
			_, err := c.closeStatement(frm, pc)
			return true, err
		}
	}

	// See if we are done with a complex statement.
	if frm.Top().Stage != frame.StageNone {
		return c.handleComplexClose(frm, vbc)
	}
	return false, nil
}
