package envfile

import (
	"slices"
	"strings"
)

// Comment is the text of a comment with the leading "#" marker and
// surrounding whitespace stripped.
type Comment string

// String renders the comment with its marker restored.
func (c Comment) String() string {
	if c == "" {
		return commentPrefix
	}

	return commentPrefix + " " + string(c)
}

// Entry is one logical unit of a parsed document: a variable assignment, an
// orphan comment, or a blank line.
//
// The set of implementations is closed: [*Variable], [OrphanComment], and
// [EmptyLine].
type Entry interface {
	String() string

	entry()
}

// Variable is an assignment line together with the comments bound to it.
type Variable struct {
	// Key is the identifier left of the first "=", trimmed.
	Key string
	// Value is the text right of the first "=" up to any inline comment,
	// trimmed. It may be empty.
	Value string
	// Comments holds the maximal run of comment lines immediately above the
	// assignment, with no intervening blank line.
	Comments []Comment
	// Inline is the comment following the value on the same line, or nil.
	Inline *Comment
}

func (*Variable) entry() {}

// String renders the preceding comments, the assignment, and the inline
// comment. Lines are separated by "\n" with no trailing terminator.
func (v *Variable) String() string {
	var sb strings.Builder

	for _, c := range v.Comments {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}

	sb.WriteString(v.Key)
	sb.WriteString(assignOp)
	sb.WriteString(v.Value)

	if v.Inline != nil {
		sb.WriteByte(' ')
		sb.WriteString(v.Inline.String())
	}

	return sb.String()
}

// Clone returns a copy of the variable that shares no mutable state with the
// receiver. Comment text is immutable and may be shared.
func (v *Variable) Clone() *Variable {
	clone := &Variable{
		Key:      v.Key,
		Value:    v.Value,
		Comments: slices.Clone(v.Comments),
	}

	if v.Inline != nil {
		inline := *v.Inline
		clone.Inline = &inline
	}

	return clone
}

// OrphanComment is a comment line not bound to any variable, either isolated
// by a blank line or trailing at end of input.
type OrphanComment struct {
	Comment Comment
}

func (OrphanComment) entry() {}

func (o OrphanComment) String() string { return o.Comment.String() }

// EmptyLine marks a blank line, preserved for formatting fidelity.
type EmptyLine struct{}

func (EmptyLine) entry() {}

func (EmptyLine) String() string { return "" }

// Document is an ordered sequence of entries. Order is the on-disk line
// order and is preserved through merge and round-trip.
type Document struct {
	Entries []Entry
}

// String serializes the document. Every entry is terminated with a newline.
func (d *Document) String() string {
	var sb strings.Builder

	for _, entry := range d.Entries {
		sb.WriteString(entry.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Get returns the first variable with the given key, or nil.
func (d *Document) Get(key string) *Variable {
	for _, entry := range d.Entries {
		if v, ok := entry.(*Variable); ok && v.Key == key {
			return v
		}
	}

	return nil
}

// Keys returns the keys of all variables in document order, including
// duplicates.
func (d *Document) Keys() []string {
	var keys []string

	for _, entry := range d.Entries {
		if v, ok := entry.(*Variable); ok {
			keys = append(keys, v.Key)
		}
	}

	return keys
}

// Len returns the number of entries in the document.
func (d *Document) Len() int { return len(d.Entries) }
