package chunk

import (
	"testing"
)

func buildList(kinds ...Kind) (*List, []*Chunk) {
	list := &List{}
	var chunks []*Chunk

	for i, k := range kinds {
		pc := &Chunk{Kind: k, Line: 1, Col: i + 1}
		list.Append(pc)
		chunks = append(chunks, pc)
	}
	return list, chunks
}

func TestNullChunk(t *testing.T) {
	if !Null.IsNull() {
		t.Fatal("Null must report IsNull")
	}

	var nilChunk *Chunk

	if !nilChunk.IsNull() {
		t.Error("nil pointer must report IsNull")
	}

	if Null.Is(None) {
		t.Error("Null must not match any kind, even None")
	}

	if !Null.Next().IsNull() || !Null.Prev().IsNull() {
		t.Error("navigation on Null must return Null")
	}

	if Null.Has(FlagInPreproc) {
		t.Error("Null carries no flags")
	}

	// Flag writes on Null are no-ops, not panics.
	Null.SetFlags(FlagStmtStart)
	Null.ClearFlags(FlagStmtStart)

	if Null.Flags != 0 {
		t.Error("flag writes on Null must not stick")
	}
}

func TestNavigationSkipsCommentsAndNewlines(t *testing.T) {
	_, chunks := buildList(Word, Comment, Newline, Semicolon)

	if got := chunks[0].NextNcNnl(); got != chunks[3] {
		t.Errorf("NextNcNnl = %v, want the semicolon", got)
	}

	if got := chunks[3].PrevNcNnl(); got != chunks[0] {
		t.Errorf("PrevNcNnl = %v, want the word", got)
	}

	if got := chunks[0].NextNc(); got != chunks[2] {
		t.Errorf("NextNc = %v, want the newline", got)
	}

	if !chunks[3].Next().IsNull() {
		t.Error("Next past the tail must be Null")
	}
}

func TestListInsertion(t *testing.T) {
	list, chunks := buildList(Word, Semicolon)

	mid := &Chunk{Kind: Comment}
	list.AddAfter(mid, chunks[0])

	if chunks[0].Next() != mid || mid.Next() != chunks[1] {
		t.Fatal("AddAfter must link between word and semicolon")
	}

	head := &Chunk{Kind: Newline}
	list.AddBefore(head, chunks[0])

	if list.Head() != head {
		t.Error("AddBefore the head must update the head")
	}

	tail := &Chunk{Kind: Newline}
	list.AddAfter(tail, chunks[1])

	if list.Tail() != tail {
		t.Error("AddAfter the tail must update the tail")
	}

	if list.Len() != 5 {
		t.Errorf("Len = %d, want 5", list.Len())
	}

	if got := list.AddAfter(&Chunk{}, Null); !got.IsNull() {
		t.Error("inserting relative to Null must report Null")
	}
}

func TestClosingMatch(t *testing.T) {
	_, chunks := buildList(BraceOpen, Word, BraceOpen, BraceClose, Word, BraceClose)

	if got := chunks[0].ClosingMatch(); got != chunks[5] {
		t.Errorf("ClosingMatch skipped nesting wrong: got %v", got)
	}

	if got := chunks[2].ClosingMatch(); got != chunks[3] {
		t.Errorf("inner ClosingMatch = %v, want inner close", got)
	}

	_, open := buildList(ParenOpen, Word)

	if !open[0].ClosingMatch().IsNull() {
		t.Error("missing closer must report Null")
	}

	if !open[1].ClosingMatch().IsNull() {
		t.Error("non-opener must report Null")
	}
}

func TestPairingTables(t *testing.T) {
	pairs := map[Kind]Kind{
		ParenOpen:  ParenClose,
		SParenOpen: SParenClose,
		FParenOpen: FParenClose,
		BraceOpen:  BraceClose,
		VBraceOpen: VBraceClose,
		AngleOpen:  AngleClose,
		SquareOpen: SquareClose,
		MacroOpen:  MacroClose,
	}

	for open, close := range pairs {
		if got := CloserOf(open); got != close {
			t.Errorf("CloserOf(%s) = %s, want %s", open, got, close)
		}

		if got := OpenerOf(close); got != open {
			t.Errorf("OpenerOf(%s) = %s, want %s", close, got, open)
		}

		if !IsOpener(open) || IsOpener(close) {
			t.Errorf("opener predicate wrong for %s/%s", open, close)
		}

		if !IsCloser(close) || IsCloser(open) {
			t.Errorf("closer predicate wrong for %s/%s", open, close)
		}
	}

	if CloserOf(Word) != None || OpenerOf(Word) != None {
		t.Error("non-bracket kinds must pair with None")
	}
}

func TestKindNameRoundTrip(t *testing.T) {
	for k := range kindNames {
		got, ok := KindFromName(k.String())

		if !ok || got != k {
			t.Errorf("KindFromName(%s) = %v, %v", k, got, ok)
		}
	}

	if _, ok := KindFromName("NOT_A_KIND"); ok {
		t.Error("unknown names must not resolve")
	}
}

func TestIsSemicolon(t *testing.T) {
	real := &Chunk{Kind: Semicolon}
	virt := &Chunk{Kind: VSemicolon}
	word := &Chunk{Kind: Word}

	if !real.IsSemicolon() || !virt.IsSemicolon() {
		t.Error("both semicolon forms must match")
	}

	if word.IsSemicolon() {
		t.Error("word is not a semicolon")
	}
}
