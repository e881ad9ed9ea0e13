package chunk

// ----------
// Chunk Kind
// ----------

// Kind classifies a chunk. This is the subset of token types the
// brace-cleanup pass reads or writes; the upstream tokenizer may know more.
type Kind int

const (
	None Kind = iota
	EOF

	// Preprocessor
	Preproc
	PPDefine
	PPIf
	PPElse
	PPEndif
	PPOther
	PreprocBody

	// Formatting-only
	Newline
	Comment
	Attribute
	Ignored

	// Leaves
	Word
	Number
	StringLit
	Function
	Macro

	// Separators and operators
	Semicolon
	VSemicolon
	Colon
	Comma
	Assign
	Arith
	Shift
	Compare
	Star
	Bool
	Minus
	Plus
	Caret
	Not
	Inv
	Question

	// Brackets. Openers and closers are paired through closerOf/openerOf,
	// never through arithmetic on the enum values.
	ParenOpen
	ParenClose
	SParenOpen
	SParenClose
	FParenOpen
	FParenClose
	BraceOpen
	BraceClose
	VBraceOpen
	VBraceClose
	AngleOpen
	AngleClose
	SquareOpen
	SquareClose
	MacroOpen
	MacroClose

	// Keywords
	If
	Else
	ElseIf
	For
	While
	WhileOfDo
	Do
	Switch
	Case
	Default
	Break
	Return
	Throw
	Goto
	Continue
	Try
	Catch
	Finally
	When
	Using
	UsingStmt
	Synchronized
	Lock
	Namespace
	Enum
	Declspec
	Constexpr

	// D
	DVersion
	DVersionIf
	DScope
	DScopeIf
	Body
	Unittest

	// C#
	Unsafe
	Volatile
	GetSet

	// Objective-C
	AutoreleasePool
	OCEnd
)

// closerOf maps every opener to its closer.
var closerOf = map[Kind]Kind{
	ParenOpen:  ParenClose,
	SParenOpen: SParenClose,
	FParenOpen: FParenClose,
	BraceOpen:  BraceClose,
	VBraceOpen: VBraceClose,
	AngleOpen:  AngleClose,
	SquareOpen: SquareClose,
	MacroOpen:  MacroClose,
}

// openerOf is the reverse mapping.
var openerOf = map[Kind]Kind{}

func init() {
	for open, close := range closerOf {
		openerOf[close] = open
	}
}

// CloserOf returns the closing kind paired with the opener k, or None
// when k is not an opener.
func CloserOf(k Kind) Kind {
	return closerOf[k]
}

// OpenerOf returns the opening kind paired with the closer k, or None
// when k is not a closer.
func OpenerOf(k Kind) Kind {
	return openerOf[k]
}

// IsOpener reports whether k opens a bracket pair.
func IsOpener(k Kind) bool {
	_, ok := closerOf[k]
	return ok
}

// IsCloser reports whether k closes a bracket pair.
func IsCloser(k Kind) bool {
	_, ok := openerOf[k]
	return ok
}
