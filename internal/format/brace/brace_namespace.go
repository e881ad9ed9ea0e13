package brace

import (
	"github.com/arma2d0/uncrustify/internal/format/chunk"
)

// markNamespace walks forward from a 'namespace' keyword stamping the
// NAMESPACE parent on its children. A semicolon ends a using-directive or
// alias form; a brace open hands the block body to flagParens and may tag
// it as a long block.
func (c *Cleaner) markNamespace(pns *chunk.Chunk) {
	isUsing := false

	pc := pns.PrevNcNnl()

	if pc.Is(chunk.Using) {
		isUsing = true
		pns.ParentKind = chunk.Using
	}

	for pc = pns.NextNcNnl(); !pc.IsNull(); {
		pc.ParentKind = chunk.Namespace

		if pc.IsNot(chunk.BraceOpen) {
			if pc.Is(chunk.Semicolon) {
				if isUsing {
					pc.ParentKind = chunk.Using
				}
				return
			}
			pc = pc.NextNcNnl()
			continue
		}

		if c.opts.IndentNamespaceLimit > 0 {
			if brClose := pc.ClosingMatch(); !brClose.IsNull() {
				if lines := brClose.Line - pc.Line - 1; lines > c.opts.IndentNamespaceLimit {
					pc.SetFlags(chunk.FlagLongBlock)
					brClose.SetFlags(chunk.FlagLongBlock)
				}
			}
		}
		c.hooks.FlagParens(pc, chunk.FlagInNamespace, chunk.None, chunk.Namespace, false)
		return
	}
}

// defaultFlagParens stamps flags on everything between open and its
// closer, optionally reclassifying the pair and setting parents.
func (c *Cleaner) defaultFlagParens(open *chunk.Chunk, flags chunk.Flags,
	openKind, parentKind chunk.Kind, parentAll bool) {
	close := open.ClosingMatch()

	if close.IsNull() {
		return
	}

	if flags != 0 {
		for t := open.Next(); !t.IsNull() && t != close; t = t.Next() {
			t.SetFlags(flags)
		}
	}

	if openKind != chunk.None {
		open.Kind = openKind
		close.Kind = chunk.CloserOf(openKind)
	}

	if parentKind != chunk.None {
		if parentAll {
			for t := open.Next(); !t.IsNull() && t != close; t = t.Next() {
				t.ParentKind = parentKind
			}
		}
		open.ParentKind = parentKind
		close.ParentKind = parentKind
	}
}
