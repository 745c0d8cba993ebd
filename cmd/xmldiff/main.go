// xmldiff is a CLI for computing and browsing structural XML diffs, and
// for projecting them onto a MusicXML-aware colored overlay.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dimelords/xmldiff/cmd/xmldiff/tui"
	"github.com/dimelords/xmldiff/internal/diagnostics"
	"github.com/dimelords/xmldiff/pkg/overlay"
	"github.com/dimelords/xmldiff/pkg/xmldiff"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	oldPath := flag.String("old", "", "Path to the old/base XML document (required)")
	newPath := flag.String("new", "", "Path to the new/revised XML document (required)")
	mode := flag.String("mode", "diff", "Operation: diff, overlay, or tui")
	outDir := flag.String("out", "", "Output directory for overlay mode (required in overlay mode)")
	format := flag.String("format", "json", "Output format for diff mode: json or text")
	verbose := flag.Bool("verbose", false, "Log extra diagnostic hints for unresolved tokens")

	flag.Parse()

	if *oldPath == "" || *newPath == "" {
		slog.Error("both -old and -new are required")
		flag.Usage()
		os.Exit(1)
	}

	oldXML, err := os.ReadFile(*oldPath)
	if err != nil {
		slog.Error("failed to read old document", "error", err, "path", *oldPath)
		os.Exit(1)
	}
	newXML, err := os.ReadFile(*newPath)
	if err != nil {
		slog.Error("failed to read new document", "error", err, "path", *newPath)
		os.Exit(1)
	}

	tokens, err := xmldiff.ComputeXMLDiffTokens(string(oldXML), string(newXML))
	if err != nil {
		slog.Error("failed to compute diff", "error", err)
		os.Exit(1)
	}

	switch *mode {
	case "diff":
		runDiff(tokens, *format)
	case "overlay":
		runOverlay(string(oldXML), string(newXML), tokens, *outDir, *verbose)
	case "tui":
		runTUI(tokens)
	default:
		slog.Error("unknown mode", "mode", *mode)
		os.Exit(1)
	}
}

func runDiff(tokens []xmldiff.Token, format string) {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tokens); err != nil {
			slog.Error("failed to encode tokens", "error", err)
			os.Exit(1)
		}
	case "text":
		for _, tok := range tokens {
			fmt.Printf("%s %s %s", tok.EditType, tok.NodeType, tok.XPath)
			if tok.OldValue != nil {
				fmt.Printf(" old=%q", *tok.OldValue)
			}
			if tok.NewValue != nil {
				fmt.Printf(" new=%q", *tok.NewValue)
			}
			fmt.Println()
		}
	default:
		slog.Error("unknown format", "format", format)
		os.Exit(1)
	}
}

func runOverlay(oldXML, newXML string, tokens []xmldiff.Token, outDir string, verbose bool) {
	if outDir == "" {
		slog.Error("-out is required in overlay mode")
		os.Exit(1)
	}

	result, err := overlay.ProjectOverlay(oldXML, newXML, tokens)
	if err != nil {
		slog.Error("failed to project overlay", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		slog.Error("failed to create output directory", "error", err, "dir", outDir)
		os.Exit(1)
	}

	oldOut := filepath.Join(outDir, "old.xml")
	newOut := filepath.Join(outDir, "new.xml")
	if err := os.WriteFile(oldOut, []byte(result.OldXML), 0o644); err != nil {
		slog.Error("failed to write overlay output", "error", err, "path", oldOut)
		os.Exit(1)
	}
	if err := os.WriteFile(newOut, []byte(result.NewXML), 0o644); err != nil {
		slog.Error("failed to write overlay output", "error", err, "path", newOut)
		os.Exit(1)
	}

	slog.Info("overlay written", "old", oldOut, "new", newOut, "unusedTokens", len(result.UnusedTokens))

	if verbose {
		for _, tok := range result.UnusedTokens {
			suggestions := diagnostics.SuggestColorableTag(tok.Name, 3)
			slog.Warn("token did not project",
				"editType", tok.EditType,
				"nodeType", tok.NodeType,
				"xpath", tok.XPath,
				"nearestColorableTags", suggestions)
		}
	}
}

func runTUI(tokens []xmldiff.Token) {
	p := tea.NewProgram(tui.NewBrowser(tokens))
	if _, err := p.Run(); err != nil {
		slog.Error("tui exited with error", "error", err)
		os.Exit(1)
	}
}
