// Command bracefix runs the brace-cleanup pass over a lexed token stream
// and prints the annotated result: nesting levels, parent annotations,
// statement flags, and any synthesized virtual braces.
//
// Input is a token dump (one "KIND<TAB>text" pair per line, kinds as
// printed by the pass) or, with --c-source, a C-family source file lexed
// by the built-in test lexer.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arma2d0/uncrustify/internal/format/brace"
	"github.com/arma2d0/uncrustify/internal/format/chunk"
	"github.com/arma2d0/uncrustify/internal/format/option"
	"github.com/arma2d0/uncrustify/internal/format/testutil"
)

// version is set by goreleaser at build time.
var version = "dev"

var (
	flagLang    string
	flagCSource bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bracefix <file>",
	Short: "Annotate a token stream with brace levels and virtual braces",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "c", "source language (c, cpp, cs, d, java, oc, pawn, vala)")
	rootCmd.PersistentFlags().BoolVar(&flagCSource, "c-source", false, "treat input as C-family source instead of a token dump")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var serr *brace.StructureError

		if errors.As(err, &serr) {
			os.Exit(serr.ExitCode())
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lang, ok := option.LangFromName(flagLang)
	if !ok {
		return fmt.Errorf("unknown language %q", flagLang)
	}
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var list *chunk.List

	if flagCSource {
		list = testutil.Lex(string(content), lang)
	} else {
		list, err = readDump(string(content))

		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
	}
	cleaner := brace.New(option.Default(), lang, filename, log)

	if err := cleaner.Cleanup(list); err != nil {
		log.Error("brace cleanup failed", "error", err)
		return err
	}
	printAnnotated(cmd.OutOrStdout(), list)

	return nil
}

// readDump parses the token-dump form: KIND<TAB>text, one per line, with
// an optional third FLAG|FLAG field. Blank lines and lines starting with
// '//' are skipped.
func readDump(content string) (*chunk.List, error) {
	list := &chunk.List{}
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)

		kind, ok := chunk.KindFromName(fields[0])
		if !ok {
			return nil, fmt.Errorf("line %d: unknown kind %q", lineNo, fields[0])
		}
		pc := &chunk.Chunk{Kind: kind, Line: lineNo, Col: 1}

		if len(fields) > 1 {
			pc.Text = fields[1]
		}

		if len(fields) > 2 && fields[2] != "" {
			for _, name := range strings.Split(fields[2], "|") {
				switch strings.ToUpper(name) {
				case "IN_PREPROC":
					pc.Flags |= chunk.FlagInPreproc
				default:
					return nil, fmt.Errorf("line %d: unknown flag %q", lineNo, name)
				}
			}
		}
		list.Append(pc)
	}
	return list, scanner.Err()
}

func printAnnotated(w io.Writer, list *chunk.List) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	fmt.Fprintf(bw, "%-14s %-10s %3s %4s %3s  %-12s %s\n",
		"KIND", "TEXT", "LVL", "BLVL", "PP", "PARENT", "FLAGS")

	for pc := list.Head(); !pc.IsNull(); pc = pc.Next() {
		text := pc.Text

		if pc.Is(chunk.Newline) {
			text = "\\n"
		}
		fmt.Fprintf(bw, "%-14s %-10s %3d %4d %3d  %-12s %s\n",
			pc.Kind, text, pc.Level, pc.BraceLevel, pc.PPLevel, pc.ParentKind, pc.Flags)
	}
}
