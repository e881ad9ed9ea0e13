package frame

import (
	"testing"

	"github.com/arma2d0/uncrustify/internal/format/chunk"
)

func TestNewFrameHasSentinel(t *testing.T) {
	frm := New()

	if frm.Size() != 1 {
		t.Fatalf("Size = %d, want 1", frm.Size())
	}

	if frm.Top().Kind != chunk.EOF {
		t.Errorf("sentinel kind = %s, want EOF", frm.Top().Kind)
	}

	if !frm.Top().Open.IsNull() {
		t.Error("sentinel opener must be the null chunk")
	}
}

func TestPushPop(t *testing.T) {
	frm := New()
	open := &chunk.Chunk{Kind: chunk.BraceOpen, ParentKind: chunk.If}

	frm.Push(open, StageNone)

	if frm.Size() != 2 {
		t.Fatalf("Size = %d, want 2", frm.Size())
	}

	top := frm.Top()

	if top.Kind != chunk.BraceOpen || top.Parent != chunk.If || top.Open != open {
		t.Errorf("entry not copied from opener: %+v", top)
	}

	popped := frm.Pop()

	if popped.Kind != chunk.BraceOpen {
		t.Errorf("Pop returned %s, want BRACE_OPEN", popped.Kind)
	}

	if frm.Top().Kind != chunk.EOF {
		t.Error("sentinel must be back on top after pop")
	}
}

func TestPushNullChunk(t *testing.T) {
	frm := New()
	frm.Push(chunk.Null, StageBrace2)

	if frm.Top().Kind != chunk.None {
		t.Errorf("blank entry kind = %s, want NONE", frm.Top().Kind)
	}

	if frm.Top().Stage != StageBrace2 {
		t.Errorf("blank entry stage = %s, want BRACE2", frm.Top().Stage)
	}
}

func TestPopSentinelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("popping the sentinel must panic")
		}
	}()

	New().Pop()
}

func TestPrevAndAt(t *testing.T) {
	frm := New()
	frm.Push(&chunk.Chunk{Kind: chunk.If}, StageParen1)
	frm.Push(&chunk.Chunk{Kind: chunk.SParenOpen}, StageNone)

	if frm.Prev().Kind != chunk.If {
		t.Errorf("Prev = %s, want IF", frm.Prev().Kind)
	}

	if frm.At(0).Kind != chunk.EOF {
		t.Error("At(0) must be the sentinel")
	}

	if frm.At(2).Kind != chunk.SParenOpen {
		t.Errorf("At(2) = %s, want SPAREN_OPEN", frm.At(2).Kind)
	}

	if frm.At(99).Kind != chunk.EOF {
		t.Error("out-of-range At must return the sentinel")
	}
}

func TestCopyIsDeep(t *testing.T) {
	frm := New()
	frm.Push(&chunk.Chunk{Kind: chunk.If}, StageParen1)
	frm.Level = 3
	frm.BraceLevel = 2

	cp := frm.Copy()
	cp.Push(&chunk.Chunk{Kind: chunk.BraceOpen}, StageNone)
	cp.Level = 9

	if frm.Size() != 2 {
		t.Errorf("mutating the copy changed the original stack: size %d", frm.Size())
	}

	if frm.Level != 3 {
		t.Errorf("mutating the copy changed the original level: %d", frm.Level)
	}
}

func TestReset(t *testing.T) {
	frm := New()
	frm.Push(&chunk.Chunk{Kind: chunk.If}, StageParen1)
	frm.Level = 4
	frm.SparenCount = 2

	frm.Reset()

	if frm.Size() != 1 || frm.Level != 0 || frm.SparenCount != 0 {
		t.Errorf("Reset left state behind: %+v", frm)
	}
}
