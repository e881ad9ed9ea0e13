package frame

import (
	"github.com/arma2d0/uncrustify/internal/format/chunk"
)

// List is the stack of frames used to snapshot parser state across
// preprocessor branches and to give #define bodies a private frame.
//
// The protocol, per directive:
//
//   - #if: a copy of the current frame is pushed; the current frame
//     continues through the #if branch.
//   - #else/#elif, first arrival: the branch-so-far frame is tucked under
//     the pre-#if snapshot and the current frame restarts from a copy of
//     that snapshot. Later #elif/#else arrivals just restart again.
//   - #endif: when an #else was seen, the #if-branch frame is restored
//     (so processing continues from the #if clause); otherwise the
//     snapshot is simply dropped and the branch state continues.
//   - #define: the current frame is pushed and the caller starts a fresh
//     private frame for the macro body.
//
// Snapshotting both branches against the same pre-state keeps indentation
// stable no matter which branch the preprocessor would keep.
type List struct {
	frames []*Frame
}

// Size returns the number of saved frames.
func (l *List) Size() int {
	return len(l.frames)
}

// Push saves a copy of frm.
func (l *List) Push(frm *Frame) {
	l.frames = append(l.frames, frm.Copy())
}

// Pop restores the most recently saved frame into frm. Popping an empty
// list leaves frm untouched.
func (l *List) Pop(frm *Frame) {
	if len(l.frames) == 0 {
		return
	}
	top := l.frames[len(l.frames)-1]
	l.frames = l.frames[:len(l.frames)-1]
	frm.Restore(top)
}

// drop discards the most recently saved frame.
func (l *List) drop() {
	if len(l.frames) > 0 {
		l.frames = l.frames[:len(l.frames)-1]
	}
}

// pushUnder tucks a copy of frm one below the top snapshot.
func (l *List) pushUnder(frm *Frame) {
	n := len(l.frames)
	l.frames = append(l.frames, l.frames[n-1])
	l.frames[n-1] = frm.Copy()
}

// Check applies the snapshot protocol for a non-#define directive and
// returns the preprocessor level to stamp on the directive's own chunks.
// ppLevel is updated in place for the chunks that follow.
func (l *List) Check(frm *Frame, ppLevel *int, directive chunk.Kind) int {
	switch directive {
	case chunk.PPIf:
		stamp := *ppLevel
		*ppLevel++
		l.Push(frm)
		frm.Ifdef = chunk.PPIf
		return stamp

	case chunk.PPElse:
		stamp := *ppLevel - 1

		if len(l.frames) == 0 {
			// #else without #if: nothing to snapshot against
			return stamp
		}

		switch frm.Ifdef {
		case chunk.PPIf:
			// First alternative branch: keep the #if branch aside and
			// restart from the pre-#if snapshot.
			l.pushUnder(frm)
			frm.Restore(l.frames[len(l.frames)-1])
			frm.Ifdef = chunk.PPElse
		case chunk.PPElse:
			// Another #elif/#else: restart from the snapshot again.
			frm.Restore(l.frames[len(l.frames)-1])
			frm.Ifdef = chunk.PPElse
		}
		return stamp

	case chunk.PPEndif:
		if *ppLevel > 0 {
			*ppLevel--
		}
		stamp := *ppLevel

		if len(l.frames) == 0 {
			return stamp
		}

		if frm.Ifdef == chunk.PPElse {
			// Drop the pre-#if snapshot and continue from the #if branch.
			l.drop()
			l.Pop(frm)
		} else {
			// No #else seen: the #if branch is the only branch.
			popped := l.frames[len(l.frames)-1]
			l.drop()
			frm.Ifdef = popped.Ifdef
		}
		return stamp

	default:
		return *ppLevel
	}
}
