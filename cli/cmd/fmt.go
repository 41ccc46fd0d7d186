package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Fmt parses an env file and re-emits it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Rewrite in canonical env syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Convert to JSON."`
	YAML   YAML   `cmd:""                    help:"Convert to YAML."`
}

const sourceFileMode = 0o644

// Native rewrites an env file in canonical syntax: one entry per line,
// normalized whitespace, comments rendered with a single "# " prefix.
type Native struct {
	Write bool `help:"Rewrite the source file in place instead of printing." short:"w"`

	Source string `arg:"" default:"-" help:"Source env file or '-' for stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Native) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, f.Source)
	if err != nil {
		return err
	}

	if f.Write && f.Source != stdinSource {
		err = os.WriteFile(f.Source, []byte(doc.String()), sourceFileMode)
		if err != nil {
			return ErrWriteOutput.
				With(slog.String("file", f.Source)).
				Wrap(err)
		}

		return nil
	}

	_, err = io.WriteString(stdout(ctx), doc.String())
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// JSON emits an env file's key/value pairs as a JSON object. Comments and
// blank lines are discarded; for duplicate keys the first occurrence wins.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source env file or '-' for stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, j.Source)
	if err != nil {
		return err
	}

	err = doc.FormatJSON(ctx, stdout(ctx), j.Indent)
	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return nil
}

// YAML emits an env file's key/value pairs as a YAML mapping. Comments and
// blank lines are discarded; for duplicate keys the first occurrence wins.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source env file or '-' for stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, y.Source)
	if err != nil {
		return err
	}

	err = doc.FormatYAML(ctx, stdout(ctx), y.Indent)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	return nil
}
