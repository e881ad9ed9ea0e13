// Package testutil provides a deliberately small C-family lexer used by
// tests and the CLI's source mode. It produces the pre-classified chunk
// streams the real pipeline would hand to brace cleanup: keywords mapped
// to their kinds, words followed by '(' marked as functions, and
// preprocessor lines flagged. It is not a real tokenizer and knows
// nothing about types, casts or templates.
package testutil

import (
	"strings"
	"unicode"

	"github.com/arma2d0/uncrustify/internal/format/chunk"
	"github.com/arma2d0/uncrustify/internal/format/option"
)

var keywords = map[string]chunk.Kind{
	"if":           chunk.If,
	"else":         chunk.Else,
	"for":          chunk.For,
	"while":        chunk.While,
	"do":           chunk.Do,
	"switch":       chunk.Switch,
	"case":         chunk.Case,
	"default":      chunk.Default,
	"break":        chunk.Break,
	"continue":     chunk.Continue,
	"return":       chunk.Return,
	"goto":         chunk.Goto,
	"throw":        chunk.Throw,
	"namespace":    chunk.Namespace,
	"try":          chunk.Try,
	"catch":        chunk.Catch,
	"finally":      chunk.Finally,
	"when":         chunk.When,
	"enum":         chunk.Enum,
	"constexpr":    chunk.Constexpr,
	"synchronized": chunk.Synchronized,
	"lock":         chunk.Lock,
	"volatile":     chunk.Volatile,
	"unsafe":       chunk.Unsafe,
	"unittest":     chunk.Unittest,
	"body":         chunk.Body,
	"__declspec":   chunk.Declspec,
}

var directives = map[string]chunk.Kind{
	"define": chunk.PPDefine,
	"if":     chunk.PPIf,
	"ifdef":  chunk.PPIf,
	"ifndef": chunk.PPIf,
	"else":   chunk.PPElse,
	"elif":   chunk.PPElse,
	"endif":  chunk.PPEndif,
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
	lang option.Lang
	list *chunk.List
}

// Lex tokenizes src into a chunk list ready for brace cleanup.
func Lex(src string, lang option.Lang) *chunk.List {
	lx := &lexer{src: src, line: 1, col: 1, lang: lang, list: &chunk.List{}}
	lx.run()
	return lx.list
}

func (lx *lexer) emit(kind chunk.Kind, text string, line, col int, flags chunk.Flags) *chunk.Chunk {
	return lx.list.Append(&chunk.Chunk{
		Kind:   kind,
		Text:   text,
		Line:   line,
		Col:    col,
		Column: col,
		Flags:  flags,
	})
}

func (lx *lexer) peek() byte {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *lexer) peekAt(off int) byte {
	if lx.pos+off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+off]
}

func (lx *lexer) advance(n int) {
	for i := 0; i < n && lx.pos < len(lx.src); i++ {
		if lx.src[lx.pos] == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
		lx.pos++
	}
}

func isWordStart(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b))
}

func isWordPart(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

func (lx *lexer) run() {
	atLineStart := true

	for lx.pos < len(lx.src) {
		b := lx.peek()

		switch {
		case b == '\n':
			line, col := lx.line, lx.col
			lx.advance(1)
			lx.emit(chunk.Newline, "\n", line, col, 0)
			atLineStart = true
			continue

		case b == ' ' || b == '\t' || b == '\r':
			lx.advance(1)
			continue

		case b == '#' && atLineStart:
			lx.lexPreproc()
			atLineStart = true // the directive consumed its newline handling
			continue
		}
		atLineStart = false
		lx.lexToken(0)
	}
}

// lexPreproc consumes '#', the directive word, and the rest of the
// logical line, flagging everything as part of the directive. The
// terminating newline is left unflagged, matching the upstream tokenizer.
func (lx *lexer) lexPreproc() {
	line, col := lx.line, lx.col
	lx.advance(1)
	lx.emit(chunk.Preproc, "#", line, col, chunk.FlagInPreproc)

	for lx.peek() == ' ' || lx.peek() == '\t' {
		lx.advance(1)
	}
	start := lx.pos
	dline, dcol := lx.line, lx.col

	for lx.pos < len(lx.src) && isWordPart(lx.peek()) {
		lx.advance(1)
	}
	word := lx.src[start:lx.pos]

	kind, ok := directives[word]
	if !ok {
		kind = chunk.PPOther
	}

	if word != "" {
		lx.emit(kind, word, dline, dcol, chunk.FlagInPreproc)
	}

	// Rest of the line: regular tokens flagged IN_PREPROC. A trailing
	// backslash continues the directive onto the next line.
	for lx.pos < len(lx.src) {
		b := lx.peek()

		switch {
		case b == '\n':
			nline, ncol := lx.line, lx.col
			lx.advance(1)
			lx.emit(chunk.Newline, "\n", nline, ncol, 0)
			return
		case b == '\\' && lx.peekAt(1) == '\n':
			lx.advance(2)
		case b == ' ' || b == '\t' || b == '\r':
			lx.advance(1)
		default:
			lx.lexToken(chunk.FlagInPreproc)
		}
	}
}

// lexToken consumes one token and appends it with the given extra flags.
func (lx *lexer) lexToken(flags chunk.Flags) {
	b := lx.peek()
	line, col := lx.line, lx.col

	emit := func(kind chunk.Kind, n int) {
		text := lx.src[lx.pos : lx.pos+n]
		lx.advance(n)
		lx.emit(kind, text, line, col, flags)
	}

	switch {
	case isWordStart(b):
		start := lx.pos
		for lx.pos < len(lx.src) && isWordPart(lx.peek()) {
			lx.advance(1)
		}
		word := lx.src[start:lx.pos]
		kind := lx.classifyWord(word)
		lx.emit(kind, word, line, col, flags)
		return

	case unicode.IsDigit(rune(b)):
		start := lx.pos
		for lx.pos < len(lx.src) && (isWordPart(lx.peek()) || lx.peek() == '.') {
			lx.advance(1)
		}
		lx.emit(chunk.Number, lx.src[start:lx.pos], line, col, flags)
		return

	case b == '"' || b == '\'':
		quote := b
		start := lx.pos
		lx.advance(1)
		for lx.pos < len(lx.src) && lx.peek() != quote {
			if lx.peek() == '\\' {
				lx.advance(1)
			}
			lx.advance(1)
		}
		lx.advance(1)
		lx.emit(chunk.StringLit, lx.src[start:lx.pos], line, col, flags)
		return

	case b == '/' && lx.peekAt(1) == '/':
		start := lx.pos
		for lx.pos < len(lx.src) && lx.peek() != '\n' {
			lx.advance(1)
		}
		lx.emit(chunk.Comment, lx.src[start:lx.pos], line, col, flags)
		return

	case b == '/' && lx.peekAt(1) == '*':
		start := lx.pos
		lx.advance(2)
		for lx.pos < len(lx.src) && !(lx.peek() == '*' && lx.peekAt(1) == '/') {
			lx.advance(1)
		}
		lx.advance(2)
		lx.emit(chunk.Comment, lx.src[start:lx.pos], line, col, flags)
		return
	}

	two := ""
	if lx.pos+2 <= len(lx.src) {
		two = lx.src[lx.pos : lx.pos+2]
	}

	switch two {
	case "==", "!=", "<=", ">=":
		emit(chunk.Compare, 2)
		return
	case "&&", "||":
		emit(chunk.Bool, 2)
		return
	case "<<", ">>":
		emit(chunk.Shift, 2)
		return
	case "++":
		emit(chunk.Plus, 2)
		return
	case "--":
		emit(chunk.Minus, 2)
		return
	case "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=":
		emit(chunk.Assign, 2)
		return
	}

	switch b {
	case ';':
		emit(chunk.Semicolon, 1)
	case ':':
		emit(chunk.Colon, 1)
	case ',':
		emit(chunk.Comma, 1)
	case '=':
		emit(chunk.Assign, 1)
	case '(':
		emit(chunk.ParenOpen, 1)
	case ')':
		emit(chunk.ParenClose, 1)
	case '{':
		emit(chunk.BraceOpen, 1)
	case '}':
		emit(chunk.BraceClose, 1)
	case '[':
		emit(chunk.SquareOpen, 1)
	case ']':
		emit(chunk.SquareClose, 1)
	case '+':
		emit(chunk.Plus, 1)
	case '-':
		emit(chunk.Minus, 1)
	case '*':
		emit(chunk.Star, 1)
	case '/', '%', '&', '|':
		emit(chunk.Arith, 1)
	case '^':
		emit(chunk.Caret, 1)
	case '!':
		emit(chunk.Not, 1)
	case '~':
		emit(chunk.Inv, 1)
	case '?':
		emit(chunk.Question, 1)
	case '<', '>':
		emit(chunk.Compare, 1)
	default:
		emit(chunk.Ignored, 1)
	}
}

// classifyWord maps an identifier to its kind, peeking ahead for the
// function-call form.
func (lx *lexer) classifyWord(word string) chunk.Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}

	// 'using (' opens a C# using statement; bare 'using' is a directive
	// or alias.
	if word == "using" {
		if lx.nextSignificantByte() == '(' {
			return chunk.UsingStmt
		}
		return chunk.Using
	}

	// D version/scope conditions.
	if lx.lang.Is(option.D) {
		switch word {
		case "version":
			return chunk.DVersion
		case "scope":
			return chunk.DScope
		}
	}

	if lx.nextSignificantByte() == '(' {
		return chunk.Function
	}
	return chunk.Word
}

func (lx *lexer) nextSignificantByte() byte {
	for i := lx.pos; i < len(lx.src); i++ {
		b := lx.src[i]

		if b == ' ' || b == '\t' {
			continue
		}
		return b
	}
	return 0
}

// Kinds flattens the list's kinds for compact assertions.
func Kinds(list *chunk.List) []chunk.Kind {
	var out []chunk.Kind

	for pc := list.Head(); !pc.IsNull(); pc = pc.Next() {
		out = append(out, pc.Kind)
	}
	return out
}

// Render prints one chunk per line: kind and text, with newlines shown
// as "\n".
func Render(list *chunk.List) string {
	var sb strings.Builder

	for pc := list.Head(); !pc.IsNull(); pc = pc.Next() {
		text := pc.Text

		if pc.Is(chunk.Newline) {
			text = "\\n"
		}
		sb.WriteString(pc.Kind.String())
		sb.WriteByte(' ')
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
