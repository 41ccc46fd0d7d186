package envfile

import (
	"context"
	"reflect"
	"testing"
)

func TestDocument_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  *Document
		want string
	}{
		{
			name: "empty document",
			doc:  &Document{},
			want: "",
		},
		{
			name: "variable with comments",
			doc: &Document{Entries: []Entry{
				&Variable{
					Key:      "KEY",
					Value:    "value",
					Comments: []Comment{"first", "second"},
					Inline:   comment("note"),
				},
			}},
			want: "# first\n# second\nKEY=value # note\n",
		},
		{
			name: "orphan comment and blank line",
			doc: &Document{Entries: []Entry{
				OrphanComment{Comment: "alone"},
				EmptyLine{},
				&Variable{Key: "KEY", Value: "b"},
			}},
			want: "# alone\n\nKEY=b\n",
		},
		{
			name: "empty comment renders bare marker",
			doc: &Document{Entries: []Entry{
				OrphanComment{},
			}},
			want: "#\n",
		},
		{
			name: "empty value",
			doc: &Document{Entries: []Entry{
				&Variable{Key: "KEY"},
			}},
			want: "KEY=\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.doc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	t.Parallel()

	// Serialization canonicalizes spacing, so it need not reproduce the
	// input byte-for-byte; re-parsing the output must yield an equal
	// document.
	inputs := []string{
		"",
		"KEY=value",
		"KEY=",
		"KEY=value # note",
		"#compact\nKEY=1",
		"# a\n\nKEY=b",
		"# Comment\nKEY=value\n\n# Orphan\nTEST=123 # inline",
		"A=1\n\n\nB=2\n# trailing",
		"URL=host?a=b&c=d # query\nPASS=x#y",
		"  SPACED  =  out  ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()

			doc, err := Parse(ctx, input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			again, err := Parse(ctx, doc.String())
			if err != nil {
				t.Fatalf("reparse error: %v", err)
			}

			if !reflect.DeepEqual(doc, again) {
				t.Errorf(
					"round-trip mismatch\nserialized: %q\n got: %#v\nwant: %#v",
					doc.String(), again.Entries, doc.Entries,
				)
			}
		})
	}
}

func TestDocument_SerializeStable(t *testing.T) {
	t.Parallel()

	// Once serialized, output is a fixed point: serializing the reparsed
	// document reproduces it byte-for-byte.
	input := "#x\nKEY=value    # note\n\n#orphan"

	ctx := context.Background()

	doc, err := Parse(ctx, input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	first := doc.String()

	again, err := Parse(ctx, first)
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}

	if second := again.String(); second != first {
		t.Errorf("serialization not stable\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestDocument_GetAndKeys(t *testing.T) {
	t.Parallel()

	doc, err := Parse(context.Background(), "A=1\n# c\nB=2\n\nA=3")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if v := doc.Get("MISSING"); v != nil {
		t.Errorf("expected nil for missing key, got %v", v)
	}

	if v := doc.Get("A"); v == nil || v.Value != "1" {
		t.Errorf("expected first match A=1, got %v", v)
	}

	want := []string{"A", "B", "A"}
	if got := doc.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestVariable_Clone(t *testing.T) {
	t.Parallel()

	orig := &Variable{
		Key:      "KEY",
		Value:    "value",
		Comments: []Comment{"a"},
		Inline:   comment("note"),
	}

	clone := orig.Clone()

	if !reflect.DeepEqual(orig, clone) {
		t.Fatalf("clone differs: %#v vs %#v", orig, clone)
	}

	clone.Comments[0] = "changed"
	*clone.Inline = "changed"

	if orig.Comments[0] != "a" || *orig.Inline != "note" {
		t.Error("mutating clone affected original")
	}
}

func TestDocument_ToMap(t *testing.T) {
	t.Parallel()

	doc, err := Parse(context.Background(), "# c\nA=1\nB=two # x\n\nA=3")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := map[string]string{"A": "1", "B": "two"}
	if got := doc.ToMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %v, want %v", got, want)
	}
}
