package envfile

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/anotherempty/env-sync/log"
)

// ParseReader parses a document from an io.Reader.
func ParseReader(ctx context.Context, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return Parse(ctx, string(data))
}

// Parse parses a document from a string.
//
// Parsing is a single line-oriented pass. Comment lines are buffered until
// the following line is classified: an assignment claims them as preceding
// comments, while a blank line or end of input flushes them as orphans.
func Parse(ctx context.Context, text string) (*Document, error) {
	lines := splitLines(text)

	log.DebugContext(ctx, "parsing document", slog.Int("lines", len(lines)))

	doc := new(Document)

	var pending []Comment

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			// Comments followed by a blank line are orphaned, not attached
			// to a later variable.
			doc.Entries = flush(doc.Entries, &pending)
			doc.Entries = append(doc.Entries, EmptyLine{})

		case strings.HasPrefix(trimmed, commentPrefix):
			pending = append(pending, parseComment(trimmed))

		case strings.Contains(trimmed, assignOp):
			v := parseVariable(trimmed)
			v.Comments = pending
			pending = nil

			log.TraceContext(ctx, "parsed variable",
				slog.String("key", v.Key),
				slog.Int("comments", len(v.Comments)),
				slog.Bool("inline", v.Inline != nil),
			)

			doc.Entries = append(doc.Entries, v)

		default:
			return nil, &InvalidLineError{Line: trimmed}
		}
	}

	// Comments trailing the file with nothing below them.
	doc.Entries = flush(doc.Entries, &pending)

	log.DebugContext(ctx, "parsed document", slog.Int("entries", doc.Len()))

	return doc, nil
}

// splitLines splits text into physical lines. The final line need not be
// newline-terminated; a trailing terminator does not produce an extra empty
// line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")

	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}

// flush appends each pending comment as an orphan entry and clears the
// buffer.
func flush(entries []Entry, pending *[]Comment) []Entry {
	for _, c := range *pending {
		entries = append(entries, OrphanComment{Comment: c})
	}

	*pending = nil

	return entries
}

// parseComment extracts comment text from a trimmed line starting with the
// comment marker.
func parseComment(trimmed string) Comment {
	return Comment(
		strings.TrimSpace(strings.TrimPrefix(trimmed, commentPrefix)),
	)
}

// parseVariable parses a trimmed line containing the assignment marker.
//
// The key is everything before the first "=". Within the remainder, the
// first "#" starts an inline comment; there is no escaping mechanism.
func parseVariable(trimmed string) *Variable {
	key, rest, _ := strings.Cut(trimmed, assignOp)

	v := &Variable{Key: strings.TrimSpace(key)}

	value, comment, ok := strings.Cut(rest, commentPrefix)
	v.Value = strings.TrimSpace(value)

	if ok {
		inline := Comment(strings.TrimSpace(comment))
		v.Inline = &inline
	}

	return v
}
