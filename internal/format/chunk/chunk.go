// Package chunk provides the doubly-linked token list the brace-cleanup
// pass operates on. A chunk is one lexed token enriched with position,
// nesting levels, a parent annotation, and flag bits. The list is built
// upstream; this package only navigates it and inserts synthesized chunks
// (virtual braces, virtual semicolons).
package chunk

// -----------
// Chunk Flags
// -----------

// Flags is a bitset of per-chunk markers.
type Flags uint32

const (
	FlagStmtStart Flags = 1 << iota // marks the start of a statement
	FlagExprStart                   // marks the start of an expression
	FlagInPreproc                   // chunk is part of a preprocessor directive
	FlagInSparen                    // inside a statement paren: if (...), while (...)
	FlagInFor                       // inside the parens of a for (...)
	FlagInNamespace                 // inside a namespace { ... } block
	FlagLongBlock                   // block spans more lines than the configured limit
)

// CopyFlags is the subset inherited by chunks inserted next to a real one.
const CopyFlags = FlagInPreproc | FlagInSparen | FlagInFor | FlagInNamespace

// Chunk is a single token node. Position fields (Line, Col) come from the
// original source; Level, BraceLevel, PPLevel, ParentKind, Parent and most
// flag bits are filled in by the cleanup pass.
type Chunk struct {
	Kind       Kind
	ParentKind Kind
	Parent     *Chunk // opener of the owning construct (switch for case/break)
	Level      int    // open brackets of every kind
	BraceLevel int    // curly braces only
	PPLevel    int    // preprocessor nesting
	Flags      Flags
	Line       int // original line, 1-based
	Col        int // original column, 1-based
	Column     int // current column; the pass sets it on synthesized chunks only
	Text       string

	prev, next *Chunk
}

// Null is the sentinel returned by exhausted queries. Predicates on it are
// safe and report "null"; it must never be linked into a list.
var Null = &Chunk{Kind: None}

// IsNull reports whether c is the null sentinel (or a nil pointer).
func (c *Chunk) IsNull() bool {
	return c == nil || c == Null
}

// IsNotNull is the inverse of IsNull.
func (c *Chunk) IsNotNull() bool {
	return !c.IsNull()
}

// Is reports whether the chunk has the given kind.
func (c *Chunk) Is(k Kind) bool {
	return !c.IsNull() && c.Kind == k
}

// IsNot is the inverse of Is. A null chunk is "not" any kind.
func (c *Chunk) IsNot(k Kind) bool {
	return !c.Is(k)
}

// IsSemicolon matches both real and virtual semicolons.
func (c *Chunk) IsSemicolon() bool {
	return c.Is(Semicolon) || c.Is(VSemicolon)
}

// IsComment reports whether the chunk is a comment.
func (c *Chunk) IsComment() bool {
	return c.Is(Comment)
}

// IsNewline reports whether the chunk is a newline.
func (c *Chunk) IsNewline() bool {
	return c.Is(Newline)
}

// IsCommentOrNewline reports whether the chunk carries no code.
func (c *Chunk) IsCommentOrNewline() bool {
	return c.IsComment() || c.IsNewline()
}

// IsText reports whether the chunk's text matches s exactly.
func (c *Chunk) IsText(s string) bool {
	return !c.IsNull() && c.Text == s
}

// Has reports whether all the given flag bits are set.
func (c *Chunk) Has(f Flags) bool {
	return !c.IsNull() && c.Flags&f == f
}

// SetFlags sets the given flag bits. No-op on the null chunk.
func (c *Chunk) SetFlags(f Flags) {
	if !c.IsNull() {
		c.Flags |= f
	}
}

// ClearFlags clears the given flag bits. No-op on the null chunk.
func (c *Chunk) ClearFlags(f Flags) {
	if !c.IsNull() {
		c.Flags &^= f
	}
}
