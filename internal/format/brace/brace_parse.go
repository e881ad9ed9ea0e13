package brace

import (
	"github.com/arma2d0/uncrustify/internal/format/chunk"
	"github.com/arma2d0/uncrustify/internal/format/frame"
	"github.com/arma2d0/uncrustify/internal/format/option"
)

// parseCleanup processes one significant chunk: marks statement and
// expression starts, advances the complex-statement state machine,
// matches closers against the stack, and pushes openers.
func (c *Cleaner) parseCleanup(frm *frame.Frame, pc *chunk.Chunk) error {
	// Mark statement starts.
	if (frm.StmtCount == 0 || frm.ExprCount == 0) &&
		!pc.IsSemicolon() &&
		pc.IsNot(chunk.BraceClose) &&
		pc.IsNot(chunk.VBraceClose) &&
		!pc.IsText(")") &&
		!pc.IsText("]") {
		pc.SetFlags(chunk.FlagExprStart)

		if frm.StmtCount == 0 {
			pc.SetFlags(chunk.FlagStmtStart)
		}
	}
	frm.StmtCount++
	frm.ExprCount++

	if frm.SparenCount > 0 {
		pc.SetFlags(chunk.FlagInSparen)

		// Mark everything in the for statement.
		for i := frm.Size() - 2; i >= 0; i-- {
			if frm.At(i).Kind == chunk.For {
				pc.SetFlags(chunk.FlagInFor)
				break
			}
		}

		// Mark the parent on semicolons in for() statements.
		if pc.Is(chunk.Semicolon) && frm.Size() > 2 && frm.Prev().Kind == chunk.For {
			pc.ParentKind = chunk.For
		}
	}

	// Check the progression of complex statements.
	if frm.Top().Stage != frame.StageNone && pc.IsNot(chunk.AutoreleasePool) {
		done, err := c.checkComplexStatements(frm, pc)

		if err != nil || done {
			return err
		}
	}

	// Check for a virtual brace statement close due to a semicolon. The
	// virtual brace will get handled the next time through; the semicolon
	// isn't handled at all.
	if frm.Top().Kind == chunk.VBraceOpen {
		switch {
		case pc.IsSemicolon():
			c.consumed = true

			if _, err := c.closeStatement(frm, pc); err != nil {
				return err
			}
		case c.lang.Is(option.Pawn|option.D) && pc.Is(chunk.BraceClose):
			if _, err := c.closeStatement(frm, pc); err != nil {
				return err
			}
		}
	}

	// Handle close paren, vbrace, brace, angle, macro-close and square.
	if chunk.IsCloser(pc.Kind) {
		if err := c.handleCloser(frm, pc); err != nil {
			return err
		}
	}

	// In WOD_SEMI we expect a semicolon, but we'll also hit the closing
	// sparen; consumed distinguishes the two.
	if frm.Top().Stage == frame.StageWodSemi {
		if c.consumed {
			// On the close sparen. Pawn: if the next chunk isn't a
			// semicolon, synthesize one to be handled on the next pass.
			if c.lang.Is(option.Pawn) {
				if tmp := pc.NextNcNnl(); !tmp.IsSemicolon() {
					c.hooks.PawnAddVSemiAfter(pc)
				}
			}
		} else {
			if pc.IsSemicolon() {
				c.consumed = true
				pc.ParentKind = chunk.WhileOfDo
			} else {
				return c.structureErrorf(pc.Line,
					"expected a semicolon for WHILE_OF_DO, got '%s'", pc.Kind)
			}

			if _, err := c.handleComplexClose(frm, pc); err != nil {
				return err
			}
		}
	}

	// Get the parent type for brace and parenthesis open.
	parentKind := c.openParent(frm, pc)

	// Adjust the level for opens and create a stack entry. A freshly
	// inserted VBRACE_OPEN was already pushed by the state machine; one
	// found in the stream is treated like a real brace.
	if chunk.IsOpener(pc.Kind) {
		frm.Level++

		if pc.Is(chunk.BraceOpen) || pc.Is(chunk.VBraceOpen) || pc.Is(chunk.MacroOpen) {
			if !c.namespaceSingleIndent(frm, pc) {
				frm.BraceLevel++
			}
		}
		frm.Push(pc, frame.StageNone)
		frm.Top().Parent = parentKind
		pc.ParentKind = parentKind
	}

	if pc.Is(chunk.BraceOpen) && pc.ParentKind == chunk.Switch {
		// Link the brace of a switch body back to the switch itself.
		if saved := frm.At(frm.Size() - 2).Open; !saved.IsNull() {
			pc.Parent = saved
		}
	}

	if pc.Is(chunk.Case) || pc.Is(chunk.Default) {
		prev := pc.PrevNcNnl()

		// 'default' can also appear as an assignment value; only the
		// switch label form is linked.
		if pc.Is(chunk.Case) || prev.IsNot(chunk.Assign) {
			pc.ParentKind = chunk.Switch

			if saved := frm.At(frm.Size() - 2).Open; !saved.IsNull() {
				pc.Parent = saved
			}
		}
	}

	if pc.Is(chunk.Break) {
		if saved := frm.At(frm.Size() - 2).Open; !saved.IsNull() {
			pc.Parent = saved
		}
	}

	// Create a stack entry for complex statements.
	switch class := patternClassOf(pc.Kind); class {
	case classBraced, classOPBraced, classElse:
		frm.Push(pc, initialStage(pc.Kind, class))
	case classPBraced:
		stage := frame.StageParen1

		if pc.Is(chunk.While) && c.maybeWhileOfDo(pc) {
			pc.Kind = chunk.WhileOfDo
			stage = frame.StageWodParen
		}
		frm.Push(pc, stage)
	}

	// Mark simple statement/expression starts: after { or }, after ';'
	// unless the stack top is a paren, and after a for's '('.
	topKind := frm.Top().Kind

	if pc.Is(chunk.SquareOpen) ||
		(pc.Is(chunk.BraceOpen) && pc.ParentKind != chunk.Assign) ||
		pc.Is(chunk.BraceClose) ||
		pc.Is(chunk.VBraceClose) ||
		(pc.Is(chunk.SParenOpen) && pc.ParentKind == chunk.For) ||
		pc.Is(chunk.Colon) ||
		pc.Is(chunk.OCEnd) ||
		(pc.IsSemicolon() &&
			topKind != chunk.ParenOpen &&
			topKind != chunk.FParenOpen &&
			topKind != chunk.SParenOpen) ||
		pc.Is(chunk.Macro) {
		frm.StmtCount = 0
		frm.ExprCount = 0
	}

	// Mark expression starts.
	tmp := pc.NextNcNnl()

	if exprReset[pc.Kind] ||
		pc.IsSemicolon() ||
		(pc.Is(chunk.Star) && tmp.IsNot(chunk.Star)) {
		frm.ExprCount = 0
	}
	return nil
}

// handleCloser validates a closing token against the stack top, pops the
// entry, stamps the parent, and advances any complex statement waiting on
// the close.
func (c *Cleaner) handleCloser(frm *frame.Frame, pc *chunk.Chunk) error {
	top := frm.Top()

	// Change PAREN_CLOSE into SPAREN_CLOSE or FPAREN_CLOSE.
	if pc.Is(chunk.ParenClose) &&
		(top.Kind == chunk.FParenOpen || top.Kind == chunk.SParenOpen) {
		pc.Kind = chunk.CloserOf(top.Kind)
	}

	// A statement paren close, freshly reclassified or already so from a
	// previous run, leaves the statement paren.
	if pc.Is(chunk.SParenClose) && top.Kind == chunk.SParenOpen {
		frm.SparenCount--
		pc.ClearFlags(chunk.FlagInSparen)
	}

	// Make sure the open / close match.
	if pc.Kind != chunk.CloserOf(top.Kind) {
		if pc.Has(chunk.FlagInPreproc) {
			// Preprocessor branches frequently disagree on brace balance;
			// accept the mismatch silently.
			return nil
		}

		if top.Kind != chunk.EOF && top.Kind != chunk.PPDefine {
			return c.structureErrorf(pc.Line,
				"unexpected '%s' for '%s' (opened on line %d)",
				pc.Text, top.Open.Kind, top.Open.Line)
		}
		c.log.Warn("unmatched closer ignored",
			"file", c.filename, "line", pc.Line, "text", pc.Text)
		return nil
	}
	c.consumed = true

	// Copy the parent, update the paren/brace levels.
	pc.ParentKind = top.Parent
	frm.Level--

	if pc.Is(chunk.BraceClose) || pc.Is(chunk.VBraceClose) || pc.Is(chunk.MacroClose) {
		frm.BraceLevel--
	}
	pc.Level = frm.Level
	pc.BraceLevel = frm.BraceLevel

	frm.Pop()

	// Frames for functions are not created as they are for an if; push a
	// bare BRACE2 entry so a virtual brace wrapping the whole block still
	// gets closed.
	if frm.Top().Stage == frame.StageNone &&
		(pc.Is(chunk.VBraceClose) || pc.Is(chunk.BraceClose) || pc.IsSemicolon()) &&
		frm.Top().Open.Is(chunk.VBraceOpen) {
		frm.Push(chunk.Null, frame.StageNone)
		frm.Top().Stage = frame.StageBrace2
	}

	// See if we are in a complex statement.
	if frm.Top().Stage != frame.StageNone {
		if _, err := c.handleComplexClose(frm, pc); err != nil {
			return err
		}
	}
	return nil
}

// openParent derives the parent annotation for an opening paren or brace
// from the previous significant chunk, reclassifying plain parens into
// statement or function parens along the way.
func (c *Cleaner) openParent(frm *frame.Frame, pc *chunk.Chunk) chunk.Kind {
	parentKind := pc.ParentKind

	switch pc.Kind {
	case chunk.ParenOpen, chunk.FParenOpen, chunk.SParenOpen:
		prev := pc.PrevNcNnl()

		if prev.IsNull() {
			return parentKind
		}

		switch {
		case sparenPrev[prev.Kind]:
			pc.Kind = chunk.SParenOpen
			parentKind = frm.Top().Kind
			frm.SparenCount++
		case prev.Is(chunk.Function):
			pc.Kind = chunk.FParenOpen
			parentKind = chunk.Function
		case prev.Is(chunk.Enum) && c.lang.Is(option.OC):
			// NS_ENUM and NS_OPTIONS are followed by a (type, name) pair.
			pc.Kind = chunk.FParenOpen
			parentKind = chunk.Enum
		case prev.Is(chunk.Declspec):
			parentKind = chunk.Declspec
		}

	case chunk.BraceOpen:
		prev := pc.PrevNcNnl()

		if prev.IsNull() {
			return parentKind
		}

		switch {
		case frm.Top().Stage != frame.StageNone:
			parentKind = frm.Top().Kind
		case prev.Is(chunk.Assign) && len(prev.Text) > 0 && prev.Text[0] == '=':
			parentKind = chunk.Assign
		case prev.Is(chunk.Return) && c.lang.Is(option.CPP):
			parentKind = chunk.Return
		case prev.Is(chunk.FParenClose) && c.lang.Is(option.OC) && prev.ParentKind == chunk.Enum:
			// Carry the ENUM parent through NS_ENUM(type, name) {.
			parentKind = chunk.Enum
		case prev.Is(chunk.FParenClose):
			parentKind = chunk.Function
		}
	}
	return parentKind
}

// namespaceSingleIndent reports whether this namespace brace should not
// bump the brace level: a namespace nested directly inside another
// namespace when the single-indent options are on.
func (c *Cleaner) namespaceSingleIndent(frm *frame.Frame, pc *chunk.Chunk) bool {
	if pc.ParentKind != chunk.Namespace {
		return false
	}

	if frm.Top().Open.IsNull() || frm.Top().Open.ParentKind != chunk.Namespace {
		return false
	}
	return c.opts.IndentNamespace && c.opts.IndentNamespaceSingleIndent
}

// maybeWhileOfDo scans backwards across a preprocessor region to see if
// this 'while' closes a 'do' body that ended inside the region; the stack
// cannot see across the frame swap, so the chunks are consulted directly.
func (c *Cleaner) maybeWhileOfDo(pc *chunk.Chunk) bool {
	prev := pc.PrevNcNnl()

	if prev.IsNull() || !prev.Has(chunk.FlagInPreproc) {
		return false
	}

	// Find the chunk before the preprocessor.
	for !prev.IsNull() && prev.Has(chunk.FlagInPreproc) {
		prev = prev.PrevNcNnl()
	}

	return (prev.Is(chunk.VBraceClose) || prev.Is(chunk.BraceClose)) &&
		prev.ParentKind == chunk.Do
}
