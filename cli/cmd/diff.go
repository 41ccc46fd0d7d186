package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/anotherempty/env-sync/log"
	"github.com/anotherempty/env-sync/merge"
)

// Diff prints what a sync would change as a unified diff, without touching
// the local file.
type Diff struct {
	Local    string `help:"Path to the local env file."    placeholder:"FILE" short:"l" name:"local"`
	Template string `help:"Path to the template env file." placeholder:"FILE" short:"t" name:"template"`
	ExitCode bool   `help:"Exit with status 1 when a sync would change the local file." name:"exit-code"`
	Context  int    `default:"3"    help:"Number of unchanged context lines."           short:"C"`
	Color    string `default:"auto" enum:"auto,always,never" help:"Colorize output."`
}

// Run executes the diff command.
func (d *Diff) Run(ctx context.Context) error {
	res, err := merge.Sync(ctx, merge.Options{
		Local:    d.Local,
		Template: d.Template,
		DryRun:   true,
	})
	if err != nil {
		return err
	}

	if !res.Changed {
		log.InfoContext(ctx, "already in sync",
			slog.String("file", res.Local))

		return nil
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(res.Before),
		B:        difflib.SplitLines(res.After),
		FromFile: res.Local,
		ToFile:   res.Local + " (synced)",
		Context:  d.Context,
	})
	if err != nil {
		return ErrRenderDiff.Wrap(err)
	}

	out := stdout(ctx)

	err = writeDiff(out, text, diffStyles(out, d.Color))
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	if d.ExitCode {
		exitFrom(ctx)(1)
	}

	return nil
}

// diffLineStyles holds one lipgloss style per unified-diff line kind.
type diffLineStyles struct {
	head lipgloss.Style
	hunk lipgloss.Style
	add  lipgloss.Style
	del  lipgloss.Style
}

// diffStyles builds line styles for the given writer. The renderer detects
// terminal capabilities on its own; the color mode only forces the profile
// for "always" and "never".
func diffStyles(w io.Writer, color string) diffLineStyles {
	renderer := lipgloss.NewRenderer(w)

	switch color {
	case "always":
		renderer.SetColorProfile(termenv.ANSI)
	case "never":
		renderer.SetColorProfile(termenv.Ascii)
	}

	return diffLineStyles{
		head: renderer.NewStyle().Bold(true),
		hunk: renderer.NewStyle().Foreground(lipgloss.Color("6")),
		add:  renderer.NewStyle().Foreground(lipgloss.Color("2")),
		del:  renderer.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// writeDiff writes the unified diff line by line, styling each line by its
// leading marker.
func writeDiff(w io.Writer, text string, styles diffLineStyles) error {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = styles.head.Render(line)
		case strings.HasPrefix(line, "@@"):
			line = styles.hunk.Render(line)
		case strings.HasPrefix(line, "+"):
			line = styles.add.Render(line)
		case strings.HasPrefix(line, "-"):
			line = styles.del.Render(line)
		}

		_, err := fmt.Fprintln(w, line)
		if err != nil {
			return err
		}
	}

	return nil
}
