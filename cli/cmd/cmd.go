package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/anotherempty/env-sync/envfile"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// exitKey is used to store the process exit function in [context.Context].
type exitKey struct{}

// WithExit returns a new context.Context carrying the exit function commands
// use to terminate with a specific status code.
func WithExit(ctx context.Context, exit func(code int)) context.Context {
	return context.WithValue(ctx, exitKey{}, exit)
}

func exitFrom(ctx context.Context) func(code int) {
	exit, ok := ctx.Value(exitKey{}).(func(code int))
	if !ok || exit == nil {
		return os.Exit
	}

	return exit
}

// stdoutKey overrides the command output writer. Used by tests.
type stdoutKey struct{}

func withStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// stdout returns the writer commands use for their primary output.
func stdout(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok && w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// parseSource parses the named env file, or stdin for "-".
func parseSource(
	ctx context.Context,
	source string,
) (*envfile.Document, error) {
	var reader io.Reader

	if source == stdinSource {
		reader = os.Stdin
	} else {
		file, err := os.Open(source)
		if err != nil {
			return nil, ErrOpenSource.
				With(slog.String("file", source)).
				Wrap(err)
		}
		defer file.Close() //nolint:errcheck

		reader = file
	}

	doc, err := envfile.ParseReader(ctx, reader)
	if err != nil {
		return nil, ErrParseSource.
			With(slog.String("file", source)).
			Wrap(err)
	}

	return doc, nil
}
