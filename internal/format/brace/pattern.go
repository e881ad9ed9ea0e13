package brace

import (
	"github.com/arma2d0/uncrustify/internal/format/chunk"
	"github.com/arma2d0/uncrustify/internal/format/frame"
)

// patternClass groups the keywords that open complex statements by the
// shape of what must follow them.
type patternClass int

const (
	classNone     patternClass = iota
	classBraced                // keyword { ... }
	classPBraced               // keyword ( ... ) { ... }
	classOPBraced              // keyword [( ... )] { ... }
	classElse                  // else [if] ...
)

var patternClasses = map[chunk.Kind]patternClass{
	chunk.Do:       classBraced,
	chunk.Try:      classBraced,
	chunk.Finally:  classBraced,
	chunk.Body:     classBraced,
	chunk.Unittest: classBraced,
	chunk.Unsafe:   classBraced,
	chunk.Volatile: classBraced,
	chunk.GetSet:   classBraced,

	chunk.If:           classPBraced,
	chunk.ElseIf:       classPBraced,
	chunk.For:          classPBraced,
	chunk.While:        classPBraced,
	chunk.Switch:       classPBraced,
	chunk.UsingStmt:    classPBraced,
	chunk.Synchronized: classPBraced,
	chunk.Lock:         classPBraced,
	chunk.Catch:        classPBraced,
	chunk.DVersionIf:   classPBraced,
	chunk.DScopeIf:     classPBraced,

	chunk.When:     classOPBraced,
	chunk.DVersion: classOPBraced,
	chunk.DScope:   classOPBraced,

	chunk.Else: classElse,
}

func patternClassOf(k chunk.Kind) patternClass {
	return patternClasses[k]
}

// initialStage returns the stage a fresh complex-statement entry starts in.
func initialStage(k chunk.Kind, class patternClass) frame.Stage {
	switch class {
	case classBraced:
		if k == chunk.Do {
			return frame.StageBraceDo
		}
		return frame.StageBrace2
	case classPBraced:
		return frame.StageParen1
	case classOPBraced:
		return frame.StageOpParen1
	case classElse:
		return frame.StageElseIf
	}
	return frame.StageNone
}

// sparenPrev lists the kinds that turn a following ( into a statement paren.
var sparenPrev = map[chunk.Kind]bool{
	chunk.If:           true,
	chunk.Constexpr:    true,
	chunk.ElseIf:       true,
	chunk.While:        true,
	chunk.WhileOfDo:    true,
	chunk.Do:           true,
	chunk.For:          true,
	chunk.Switch:       true,
	chunk.Catch:        true,
	chunk.Synchronized: true,
	chunk.DVersion:     true,
	chunk.DVersionIf:   true,
	chunk.DScope:       true,
	chunk.DScopeIf:     true,
}

// exprReset lists the kinds that start a fresh expression after them.
var exprReset = map[chunk.Kind]bool{
	chunk.Arith:      true,
	chunk.Shift:      true,
	chunk.Assign:     true,
	chunk.Case:       true,
	chunk.Compare:    true,
	chunk.Bool:       true,
	chunk.Minus:      true,
	chunk.Plus:       true,
	chunk.Caret:      true,
	chunk.AngleOpen:  true,
	chunk.AngleClose: true,
	chunk.Return:     true,
	chunk.Throw:      true,
	chunk.Goto:       true,
	chunk.Continue:   true,
	chunk.ParenOpen:  true,
	chunk.FParenOpen: true,
	chunk.SParenOpen: true,
	chunk.BraceOpen:  true,
	chunk.Comma:      true,
	chunk.Not:        true,
	chunk.Inv:        true,
	chunk.Colon:      true,
	chunk.Question:   true,
}
