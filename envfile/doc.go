// Package envfile parses ".env" style configuration files into an ordered,
// comment-preserving document model and serializes them back to text.
//
// # Grammar
//
// Input is line-oriented. After trimming surrounding whitespace, each line is
// one of:
//
//   - an empty line
//   - a comment line beginning with "#"
//   - an assignment "KEY=VALUE", optionally followed by "# inline comment"
//
// Anything else is an error. Only the first "=" on a line delimits the key;
// later "=" characters belong to the value. Within the value, the first "#"
// always starts an inline comment; there is no escaping mechanism.
//
// # Document model
//
// A [Document] is an ordered sequence of [Entry] values. Entry is a closed
// sum over three shapes: [Variable] (an assignment plus the comments bound to
// it), [OrphanComment] (a comment line not attached to any variable), and
// [EmptyLine]. A run of comment lines immediately above an assignment becomes
// that variable's preceding comments; a run terminated by a blank line or end
// of input becomes orphan comments instead.
//
// # Canonical form
//
// Comment text is stored with the "#" marker and surrounding whitespace
// stripped, and always rendered as "# " followed by the text (a bare "#" when
// the text is empty). Serialization therefore need not reproduce the input
// byte-for-byte, but re-parsing serialized output always yields an equal
// Document:
//
//	Parse(ctx, doc.String()) == doc
package envfile

const (
	commentPrefix = "#"
	assignOp      = "="
)
