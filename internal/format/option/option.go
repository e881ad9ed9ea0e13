// Package option holds the configuration consulted by the brace-cleanup
// pass. Values are plain structs threaded through explicitly; there is no
// process-wide state.
package option

import "strings"

// Lang is a bitset of source languages. Some toggles combine languages
// (the virtual close on '}' applies to both Pawn and D), so a bitset is
// more convenient than a plain enum.
type Lang uint16

const (
	C Lang = 1 << iota
	CPP
	CS
	D
	Java
	OC
	Pawn
	Vala
)

var langNames = map[string]Lang{
	"c":    C,
	"cpp":  CPP,
	"cs":   CS,
	"d":    D,
	"java": Java,
	"oc":   OC,
	"pawn": Pawn,
	"vala": Vala,
}

// Is reports whether any of the languages in mask are enabled.
func (l Lang) Is(mask Lang) bool {
	return l&mask != 0
}

// LangFromName resolves a language by its short name (c, cpp, cs, d, java,
// oc, pawn, vala). The second result is false for unknown names.
func LangFromName(name string) (Lang, bool) {
	l, ok := langNames[strings.ToLower(name)]
	return l, ok
}

func (l Lang) String() string {
	for name, bit := range langNames {
		if l == bit {
			return name
		}
	}
	return "unknown"
}

// Options are the settings the pass reads. The full beautifier schema is
// far larger; only these reach brace cleanup.
type Options struct {
	// PPWarnUnbalancedIf warns when a #define body exits with an
	// unbalanced brace level.
	PPWarnUnbalancedIf bool

	// IndentNamespace and IndentNamespaceSingleIndent together suppress
	// the brace-level bump for a namespace nested directly inside another
	// namespace.
	IndentNamespace             bool
	IndentNamespaceSingleIndent bool

	// IndentNamespaceLimit is the line count past which a namespace block
	// is flagged as a long block. Zero disables the check.
	IndentNamespaceLimit int

	// IndentElseIf keeps "else if" as two constructs when a newline
	// separates the keywords.
	IndentElseIf bool

	// IndentUsingBlock controls whether, in C#, an unbraced using (...)
	// body that is itself a using (...) statement is virtual-braced. Other
	// unbraced using bodies are virtual-braced either way.
	IndentUsingBlock bool
}

// Default returns the options with their stock values.
func Default() Options {
	return Options{
		PPWarnUnbalancedIf: true,
		IndentUsingBlock:   true,
	}
}
