// Package brace implements the brace-cleanup pass of the beautifier.
//
// The pass walks the lexed chunk list once, head to tail, and fills in the
// structural facts every later stage depends on: nesting levels, parent
// annotations on brackets, statement and expression starts, and synthetic
// virtual braces around unbraced control-flow bodies.
//
// At the heart of the algorithm are two stacks. The parse frame keeps
// track of braces, parens and if/else/switch/do/while items; complex
// statements go through stages driven by the next significant token.
// Take a simple if statement as an example:
//
//	if ( x ) { x--; }
//
//	'if' [IF - PAREN1]
//	'('  [IF - PAREN1] [SPAREN_OPEN]
//	'x'  [IF - PAREN1] [SPAREN_OPEN]
//	')'  [IF - BRACE2]              <- stage advanced
//	'{'  [IF - BRACE2] [BRACE_OPEN]
//	...
//	'}'  [IF - ELSE]                <- lack of else closes the statement
//
// When braces were omitted a virtual pair is synthesized:
//
//	if ( x ) x--; else x++;
//
//	')'    [IF - BRACE2]
//	'x'    [IF - BRACE2] [VBRACE_OPEN]  <- '{' was not next
//	';'    [IF - ELSE]                  <- VBRACE_CLOSE added after ';'
//	'else' [ELSE - ELSEIF]              <- IF swapped for ELSE
//
// The frame list on top snapshots the whole frame across #if/#else/#endif
// so both branches are measured against the same pre-state, and gives
// every #define body a private frame so macro indentation cannot corrupt
// the surrounding code.
package brace

import (
	"log/slog"

	"github.com/arma2d0/uncrustify/internal/format/chunk"
	"github.com/arma2d0/uncrustify/internal/format/frame"
	"github.com/arma2d0/uncrustify/internal/format/option"
)

// Hooks are the language-specific passes this pass delegates to. Zero
// fields fall back to the built-in defaults.
type Hooks struct {
	// FlagParens stamps flags (and optionally kinds and parents) onto
	// everything between an opener and its closer.
	FlagParens func(open *chunk.Chunk, flags chunk.Flags, openKind, parentKind chunk.Kind, parentAll bool)

	// PawnCheckVSemicolon decides, at a newline inside a virtual block,
	// whether Pawn's optional statement terminator must be synthesized.
	// It returns the chunk processing should continue from.
	PawnCheckVSemicolon func(nl *chunk.Chunk) *chunk.Chunk

	// PawnAddVSemiAfter inserts a virtual semicolon after pc.
	PawnAddVSemiAfter func(pc *chunk.Chunk) *chunk.Chunk
}

// Cleaner carries everything the pass needs: configuration, the scan
// state, and the list under mutation. One Cleaner per run.
type Cleaner struct {
	opts     option.Options
	lang     option.Lang
	filename string
	log      *slog.Logger
	hooks    Hooks

	list *chunk.List

	// scan-global brace state
	frames    frame.List
	inPreproc chunk.Kind
	ppLevel   int
	consumed  bool
}

// New returns a Cleaner for one run over one file.
func New(opts option.Options, lang option.Lang, filename string, log *slog.Logger) *Cleaner {
	if log == nil {
		log = slog.Default()
	}
	c := &Cleaner{
		opts:     opts,
		lang:     lang,
		filename: filename,
		log:      log,
	}
	c.hooks = Hooks{
		FlagParens:          c.defaultFlagParens,
		PawnCheckVSemicolon: c.defaultPawnCheckVSemicolon,
		PawnAddVSemiAfter:   c.defaultPawnAddVSemiAfter,
	}
	return c
}

// SetHooks overrides the language-specific hooks. Nil fields keep the
// built-in defaults.
func (c *Cleaner) SetHooks(h Hooks) {
	if h.FlagParens != nil {
		c.hooks.FlagParens = h.FlagParens
	}
	if h.PawnCheckVSemicolon != nil {
		c.hooks.PawnCheckVSemicolon = h.PawnCheckVSemicolon
	}
	if h.PawnAddVSemiAfter != nil {
		c.hooks.PawnAddVSemiAfter = h.PawnAddVSemiAfter
	}
}

// Cleanup runs the pass over list. The list is mutated in place and
// extended with virtual braces and virtual semicolons. A non-nil error is
// always a *StructureError; recoverable conditions are logged and do not
// stop the sweep.
func (c *Cleaner) Cleanup(list *chunk.List) error {
	c.list = list
	c.frames = frame.List{}
	c.inPreproc = chunk.None
	c.ppLevel = 0

	frm := frame.New()
	directivePP := c.ppLevel

	for pc := list.Head(); !pc.IsNull(); {
		// Check for leaving a #define body.
		if c.inPreproc != chunk.None && !pc.Has(chunk.FlagInPreproc) {
			if c.inPreproc == chunk.PPDefine {
				if c.opts.PPWarnUnbalancedIf && frm.BraceLevel != 1 {
					c.log.Warn("unbalanced #define block braces",
						"file", c.filename, "line", pc.Line, "out-level", frm.BraceLevel)
				}
				c.frames.Pop(frm)
			}
			c.inPreproc = chunk.None
		}
		// Check for a preprocessor start.
		ppLevel := c.ppLevel

		if pc.Is(chunk.Preproc) {
			directivePP = c.preprocStart(frm, pc)
		}

		// The directive's own chunks keep the level returned for its '#'.
		if pc.Has(chunk.FlagInPreproc) {
			ppLevel = directivePP
		}

		// Do before assigning stuff from the frame.
		if c.lang.Is(option.Pawn) && frm.Top().Kind == chunk.VBraceOpen && pc.Is(chunk.Newline) {
			pc = c.hooks.PawnCheckVSemicolon(pc)

			if pc.IsNull() {
				return nil
			}
		}

		if pc.Is(chunk.Namespace) {
			c.markNamespace(pc)
		}
		// Assume the level won't change.
		pc.Level = frm.Level
		pc.BraceLevel = frm.BraceLevel
		pc.PPLevel = ppLevel

		// #define bodies get the full treatment; the initial '#' is passed
		// in too, to close out any open virtual braces.
		if !pc.IsCommentOrNewline() && pc.IsNot(chunk.Attribute) && pc.IsNot(chunk.Ignored) &&
			(c.inPreproc == chunk.PPDefine || c.inPreproc == chunk.None) {
			c.consumed = false

			if err := c.parseCleanup(frm, pc); err != nil {
				return err
			}
			c.log.Debug("stack", "after", pc.Text, "frame", frm.String())
		}
		pc = pc.Next()
	}
	return nil
}

// preprocStart inspects the directive following a '#' and applies the
// frame snapshot protocol. It returns the pp level for the directive's
// own chunks.
func (c *Cleaner) preprocStart(frm *frame.Frame, pc *chunk.Chunk) int {
	ppLevel := c.ppLevel

	next := pc.NextNcNnl()
	if next.IsNull() {
		return ppLevel
	}
	c.inPreproc = next.Kind

	// If we are not in a define, check for #if, #else, #endif, etc.
	if c.inPreproc != chunk.PPDefine {
		return c.frames.Check(frm, &c.ppLevel, c.inPreproc)
	}
	// Else push the frame stack; a macro body starts a new, blank frame.
	c.frames.Push(frm)

	frm.Reset()
	frm.Level = 1
	frm.BraceLevel = 1

	frm.Push(chunk.Null, frame.StageNone)
	frm.Top().Kind = chunk.PPDefine

	return ppLevel
}
