package merge

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/sahilm/fuzzy"

	"github.com/anotherempty/env-sync/envfile"
	"github.com/anotherempty/env-sync/log"
)

const (
	// DefaultLocalFile is the local filename used when none is specified,
	// resolved relative to the current working directory.
	DefaultLocalFile = ".env"
	// DefaultTemplateFile is the template filename used when none is
	// specified.
	DefaultTemplateFile = ".env.template"

	localFileMode = 0o644
)

// Options configures a file-level sync.
type Options struct {
	// Local is the path to the local env file. Empty means
	// [DefaultLocalFile] in the current working directory.
	Local string
	// Template is the path to the template file. Empty means
	// [DefaultTemplateFile].
	Template string
	// DryRun computes the merged result without writing it back.
	DryRun bool
}

// Result reports the outcome of a sync.
type Result struct {
	// Document is the merged document.
	Document *envfile.Document
	// Local and Template are the resolved file paths.
	Local    string
	Template string
	// Before is the local file's content prior to the sync; After is the
	// merged serialization (written back unless DryRun was set).
	Before string
	After  string
	// Dropped lists local-only keys that did not survive the merge.
	Dropped []string
	// Changed reports whether After differs from Before.
	Changed bool
}

// Sync merges the local env file with the template and writes the result
// back to the local path.
//
// A missing template is an error; a missing local file is created empty
// first. The local file is held under an exclusive advisory lock for the
// whole read-merge-write window so concurrent syncs of the same file do not
// interleave.
func Sync(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{
		Local:    opts.Local,
		Template: opts.Template,
	}

	if res.Local == "" {
		res.Local = filepath.Join(workingDir(), DefaultLocalFile)
	}

	if res.Template == "" {
		res.Template = DefaultTemplateFile
	}

	log.DebugContext(ctx, "resolved file paths",
		slog.String("local", res.Local),
		slog.String("template", res.Template),
	)

	if _, err := os.Stat(res.Template); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrTemplateMissing.
				With(slog.String("file", res.Template))
		}

		return nil, ErrReadTemplate.
			With(slog.String("file", res.Template)).
			Wrap(err)
	}

	if _, err := os.Stat(res.Local); errors.Is(err, fs.ErrNotExist) {
		log.DebugContext(ctx, "creating local file",
			slog.String("file", res.Local))

		err = os.WriteFile(res.Local, nil, localFileMode)
		if err != nil {
			return nil, ErrCreateLocal.
				With(slog.String("file", res.Local)).
				Wrap(err)
		}
	}

	lock := flock.New(res.Local)

	err := lock.Lock()
	if err != nil {
		return nil, ErrLockLocal.
			With(slog.String("file", res.Local)).
			Wrap(err)
	}
	defer lock.Unlock() //nolint:errcheck

	localDoc, err := parseFile(ctx, res.Local, &res.Before, ErrReadLocal, ErrParseLocal)
	if err != nil {
		return nil, err
	}

	templateDoc, err := parseFile(ctx, res.Template, nil, ErrReadTemplate, ErrParseTemplate)
	if err != nil {
		return nil, err
	}

	res.Document = Merge(ctx, localDoc, templateDoc)
	res.After = res.Document.String()
	res.Changed = res.After != res.Before
	res.Dropped = Dropped(localDoc, templateDoc)

	warnDropped(ctx, res.Dropped, templateDoc.Keys())

	if opts.DryRun {
		log.InfoContext(ctx, "dry run, not writing local file",
			slog.String("file", res.Local),
			slog.Bool("changed", res.Changed),
		)

		return res, nil
	}

	err = os.WriteFile(res.Local, []byte(res.After), localFileMode)
	if err != nil {
		return nil, ErrWriteLocal.
			With(slog.String("file", res.Local)).
			Wrap(err)
	}

	log.InfoContext(ctx, "sync complete",
		slog.String("file", res.Local),
		slog.Int("entries", res.Document.Len()),
		slog.Bool("changed", res.Changed),
	)

	return res, nil
}

// parseFile reads and parses one env file, tagging failures with the given
// sentinels. When before is non-nil it receives the raw file content.
func parseFile(
	ctx context.Context,
	path string,
	before *string,
	readErr, parseErr *envfile.Error,
) (*envfile.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readErr.
			With(slog.String("file", path)).
			Wrap(err)
	}

	if before != nil {
		*before = string(data)
	}

	doc, err := envfile.Parse(ctx, string(data))
	if err != nil {
		return nil, parseErr.
			With(slog.String("file", path)).
			Wrap(err)
	}

	return doc, nil
}

// warnDropped logs each dropped local-only key, suggesting the closest
// template key when one resembles it.
func warnDropped(ctx context.Context, dropped, templateKeys []string) {
	for _, key := range dropped {
		attrs := []slog.Attr{slog.String("key", key)}

		if match := closest(key, templateKeys); match != "" {
			attrs = append(attrs, slog.String("did_you_mean", match))
		}

		log.WarnContext(ctx, "dropping local-only key", attrs...)
	}
}

// closest returns the best fuzzy match for key among candidates, or "".
func closest(key string, candidates []string) string {
	matches := fuzzy.Find(key, candidates)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

// workingDir returns the current working directory, falling back to ".".
func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}

	return dir
}
