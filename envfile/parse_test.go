package envfile

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func comment(s string) *Comment {
	c := Comment(s)

	return &c
}

func TestParse_Entries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "simple assignments",
			input: "KEY=value\nANOTHER=test",
			want: []Entry{
				&Variable{Key: "KEY", Value: "value"},
				&Variable{Key: "ANOTHER", Value: "test"},
			},
		},
		{
			name:  "bare assignment",
			input: "KEY=",
			want: []Entry{
				&Variable{Key: "KEY", Value: ""},
			},
		},
		{
			name:  "bare assignment with trailing whitespace",
			input: "KEY=   ",
			want: []Entry{
				&Variable{Key: "KEY", Value: ""},
			},
		},
		{
			name:  "inline comment split",
			input: "KEY=value # note",
			want: []Entry{
				&Variable{Key: "KEY", Value: "value", Inline: comment("note")},
			},
		},
		{
			name:  "value containing equals",
			input: "URL=postgres://host?sslmode=disable",
			want: []Entry{
				&Variable{Key: "URL", Value: "postgres://host?sslmode=disable"},
			},
		},
		{
			name:  "hash inside value starts inline comment",
			input: "PASS=abc#def",
			want: []Entry{
				&Variable{Key: "PASS", Value: "abc", Inline: comment("def")},
			},
		},
		{
			name:  "empty value with inline comment",
			input: "KEY= # pending",
			want: []Entry{
				&Variable{Key: "KEY", Value: "", Inline: comment("pending")},
			},
		},
		{
			name:  "preceding comments attach to variable",
			input: "# first\n# second\nKEY=value",
			want: []Entry{
				&Variable{
					Key:      "KEY",
					Value:    "value",
					Comments: []Comment{"first", "second"},
				},
			},
		},
		{
			name:  "comment then blank line orphans",
			input: "# a\n\nKEY=b",
			want: []Entry{
				OrphanComment{Comment: "a"},
				EmptyLine{},
				&Variable{Key: "KEY", Value: "b"},
			},
		},
		{
			name:  "trailing comments orphaned at end of input",
			input: "KEY=value\n# trailing\n# more",
			want: []Entry{
				&Variable{Key: "KEY", Value: "value"},
				OrphanComment{Comment: "trailing"},
				OrphanComment{Comment: "more"},
			},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  KEY  =  spaced value  ",
			want: []Entry{
				&Variable{Key: "KEY", Value: "spaced value"},
			},
		},
		{
			name:  "crlf line endings",
			input: "KEY=value\r\nOTHER=x\r\n",
			want: []Entry{
				&Variable{Key: "KEY", Value: "value"},
				&Variable{Key: "OTHER", Value: "x"},
			},
		},
		{
			name:  "blank lines preserved",
			input: "A=1\n\n\nB=2",
			want: []Entry{
				&Variable{Key: "A", Value: "1"},
				EmptyLine{},
				EmptyLine{},
				&Variable{Key: "B", Value: "2"},
			},
		},
		{
			name:  "comment marker without space",
			input: "#compact\nKEY=1",
			want: []Entry{
				&Variable{Key: "KEY", Value: "1", Comments: []Comment{"compact"}},
			},
		},
		{
			name:  "trailing newline produces no extra entry",
			input: "KEY=value\n",
			want: []Entry{
				&Variable{Key: "KEY", Value: "value"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if !reflect.DeepEqual(doc.Entries, tt.want) {
				t.Errorf("entries mismatch\n got: %#v\nwant: %#v", doc.Entries, tt.want)
			}
		})
	}
}

func TestParse_InvalidLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		line  string
	}{
		{
			name:  "no assignment marker",
			input: "not a valid line",
			line:  "not a valid line",
		},
		{
			name:  "invalid line after valid entries",
			input: "KEY=value\nbroken",
			line:  "broken",
		},
		{
			name:  "invalid line is trimmed",
			input: "   broken   ",
			line:  "broken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(context.Background(), tt.input)
			if err == nil {
				t.Fatalf("expected error, got document with %d entries", doc.Len())
			}

			var invalid *InvalidLineError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidLineError, got %T: %v", err, err)
			}

			if invalid.Line != tt.line {
				t.Errorf("offending line = %q, want %q", invalid.Line, tt.line)
			}
		})
	}
}

func TestParse_DuplicateKeys(t *testing.T) {
	t.Parallel()

	doc, err := Parse(context.Background(), "KEY=first\nKEY=second")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if doc.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", doc.Len())
	}

	// Lookup returns the first match.
	if got := doc.Get("KEY").Value; got != "first" {
		t.Errorf("Get returned value %q, want %q", got, "first")
	}
}

func TestParseReader(t *testing.T) {
	t.Parallel()

	doc, err := ParseReader(context.Background(), strings.NewReader("KEY=value"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if v := doc.Get("KEY"); v == nil || v.Value != "value" {
		t.Errorf("expected KEY=value, got %v", v)
	}
}
