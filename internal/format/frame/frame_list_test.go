package frame

import (
	"testing"

	"github.com/arma2d0/uncrustify/internal/format/chunk"
)

func TestCheckIfWithoutElseKeepsBranchState(t *testing.T) {
	var fl List
	frm := New()
	frm.Level = 5
	ppLevel := 0

	stamp := fl.Check(frm, &ppLevel, chunk.PPIf)

	if stamp != 0 || ppLevel != 1 {
		t.Fatalf("after #if: stamp=%d ppLevel=%d, want 0 and 1", stamp, ppLevel)
	}

	// The #if branch changes state.
	frm.Level = 7

	stamp = fl.Check(frm, &ppLevel, chunk.PPEndif)

	if stamp != 0 || ppLevel != 0 {
		t.Fatalf("after #endif: stamp=%d ppLevel=%d, want 0 and 0", stamp, ppLevel)
	}

	// A lone #if is the only branch; its changes persist.
	if frm.Level != 7 {
		t.Errorf("level = %d, want 7 (branch state kept)", frm.Level)
	}

	if fl.Size() != 0 {
		t.Errorf("frame list size = %d, want 0", fl.Size())
	}
}

func TestCheckElseRestartsFromSnapshot(t *testing.T) {
	var fl List
	frm := New()
	frm.Level = 5
	ppLevel := 0

	fl.Check(frm, &ppLevel, chunk.PPIf)
	frm.Level = 7 // #if branch

	stamp := fl.Check(frm, &ppLevel, chunk.PPElse)

	if stamp != 0 {
		t.Errorf("#else stamp = %d, want 0", stamp)
	}

	if frm.Level != 5 {
		t.Fatalf("level after #else = %d, want the pre-#if 5", frm.Level)
	}
	frm.Level = 9 // #else branch

	fl.Check(frm, &ppLevel, chunk.PPEndif)

	// Processing continues from the #if clause.
	if frm.Level != 7 {
		t.Errorf("level after #endif = %d, want the #if branch's 7", frm.Level)
	}

	if fl.Size() != 0 {
		t.Errorf("frame list size = %d, want 0", fl.Size())
	}
}

func TestCheckMultipleElifBranches(t *testing.T) {
	var fl List
	frm := New()
	frm.Level = 5
	ppLevel := 0

	fl.Check(frm, &ppLevel, chunk.PPIf)
	frm.Level = 7

	fl.Check(frm, &ppLevel, chunk.PPElse) // #elif
	if frm.Level != 5 {
		t.Fatalf("first #elif must restart from 5, got %d", frm.Level)
	}
	frm.Level = 8

	fl.Check(frm, &ppLevel, chunk.PPElse) // #else
	if frm.Level != 5 {
		t.Fatalf("second branch must restart from 5, got %d", frm.Level)
	}
	frm.Level = 9

	fl.Check(frm, &ppLevel, chunk.PPEndif)

	if frm.Level != 7 {
		t.Errorf("level after #endif = %d, want 7", frm.Level)
	}

	if fl.Size() != 0 {
		t.Errorf("frame list size = %d, want 0", fl.Size())
	}
}

func TestCheckNestedConditionals(t *testing.T) {
	var fl List
	frm := New()
	frm.Level = 1
	ppLevel := 0

	fl.Check(frm, &ppLevel, chunk.PPIf) // outer
	frm.Level = 2

	fl.Check(frm, &ppLevel, chunk.PPIf) // inner
	frm.Level = 3

	if ppLevel != 2 {
		t.Errorf("ppLevel = %d, want 2", ppLevel)
	}

	fl.Check(frm, &ppLevel, chunk.PPElse) // inner else
	if frm.Level != 2 {
		t.Fatalf("inner #else must restart from 2, got %d", frm.Level)
	}
	frm.Level = 4

	fl.Check(frm, &ppLevel, chunk.PPEndif) // inner endif
	if frm.Level != 3 {
		t.Fatalf("inner #endif must restore the inner #if branch, got %d", frm.Level)
	}

	fl.Check(frm, &ppLevel, chunk.PPEndif) // outer endif

	if frm.Level != 3 || ppLevel != 0 || fl.Size() != 0 {
		t.Errorf("after outer #endif: level=%d ppLevel=%d size=%d", frm.Level, ppLevel, fl.Size())
	}
}

func TestCheckStrayDirectives(t *testing.T) {
	var fl List
	frm := New()
	frm.Level = 5
	ppLevel := 0

	// #else and #endif without a matching #if are ignored.
	fl.Check(frm, &ppLevel, chunk.PPElse)
	fl.Check(frm, &ppLevel, chunk.PPEndif)

	if frm.Level != 5 || fl.Size() != 0 {
		t.Errorf("stray directives must not disturb state: level=%d size=%d", frm.Level, fl.Size())
	}

	// Non-conditional directives leave everything alone.
	stamp := fl.Check(frm, &ppLevel, chunk.PPOther)

	if stamp != 0 || ppLevel != 0 {
		t.Errorf("#pragma and friends must not touch pp level: stamp=%d level=%d", stamp, ppLevel)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	var fl List
	frm := New()
	frm.Push(&chunk.Chunk{Kind: chunk.BraceOpen}, StageNone)
	frm.Level = 2
	frm.BraceLevel = 1

	fl.Push(frm)

	frm.Reset()
	frm.Level = 1
	frm.BraceLevel = 1

	fl.Pop(frm)

	if frm.Level != 2 || frm.BraceLevel != 1 || frm.Size() != 2 {
		t.Errorf("Pop did not restore the saved frame: %+v", frm)
	}

	// Popping an empty list leaves the frame untouched.
	fl.Pop(frm)

	if frm.Level != 2 {
		t.Error("empty Pop must not modify the frame")
	}
}
