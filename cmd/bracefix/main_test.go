package main

import (
	"strings"
	"testing"

	"github.com/arma2d0/uncrustify/internal/format/chunk"
)

func TestReadDump(t *testing.T) {
	dump := strings.Join([]string{
		"// a comment line",
		"IF\tif",
		"PAREN_OPEN\t(",
		"WORD\tx",
		"PAREN_CLOSE\t)",
		"",
		"WORD\ty",
		"SEMICOLON\t;",
	}, "\n")

	list, err := readDump(dump)
	if err != nil {
		t.Fatalf("readDump failed: %v", err)
	}

	if list.Len() != 6 {
		t.Fatalf("Len = %d, want 6 (comment and blank skipped)", list.Len())
	}

	head := list.Head()

	if head.Kind != chunk.If || head.Text != "if" {
		t.Errorf("head = %s %q, want IF \"if\"", head.Kind, head.Text)
	}
}

func TestReadDumpFlags(t *testing.T) {
	list, err := readDump("PREPROC\t#\tIN_PREPROC\nPP_DEFINE\tdefine\tIN_PREPROC\n")
	if err != nil {
		t.Fatalf("readDump failed: %v", err)
	}

	for pc := list.Head(); !pc.IsNull(); pc = pc.Next() {
		if !pc.Has(chunk.FlagInPreproc) {
			t.Errorf("%s must carry IN_PREPROC", pc.Kind)
		}
	}
}

func TestReadDumpErrors(t *testing.T) {
	if _, err := readDump("NOT_A_KIND\tx\n"); err == nil {
		t.Error("unknown kind must error")
	}

	if _, err := readDump("WORD\tx\tNOT_A_FLAG\n"); err == nil {
		t.Error("unknown flag must error")
	}
}
