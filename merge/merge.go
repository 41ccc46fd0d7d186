package merge

import (
	"context"
	"log/slog"
	"slices"

	"github.com/anotherempty/env-sync/envfile"
	"github.com/anotherempty/env-sync/log"
)

// Merge produces a new document with the template's structure enriched by
// local overrides.
//
// For every template variable whose key also exists in local (first match by
// key), three independent overrides apply, each gated on the template side
// being empty or absent while the local side is non-empty or present:
//
//   - an empty template value takes the local value
//   - a missing template inline comment takes the local inline comment
//   - empty template preceding comments take the local comments, as a whole
//     list
//
// Non-variable template entries and template variables without a local match
// pass through unchanged. Local keys absent from the template are dropped.
//
// Merge is a pure, total function: it never fails, and the result shares no
// mutable state with either input.
func Merge(
	ctx context.Context,
	local, template *envfile.Document,
) *envfile.Document {
	log.DebugContext(ctx, "merging documents",
		slog.Int("local_entries", local.Len()),
		slog.Int("template_entries", template.Len()),
	)

	merged := new(envfile.Document)

	for _, entry := range template.Entries {
		tv, ok := entry.(*envfile.Variable)
		if !ok {
			merged.Entries = append(merged.Entries, entry)

			continue
		}

		v := tv.Clone()

		if lv := local.Get(v.Key); lv != nil {
			overlay(ctx, v, lv)
		}

		merged.Entries = append(merged.Entries, v)
	}

	return merged
}

// overlay fills the empty fields of a template variable from its local
// counterpart.
func overlay(ctx context.Context, v, lv *envfile.Variable) {
	if v.Value == "" && lv.Value != "" {
		log.TraceContext(ctx, "adopting local value",
			slog.String("key", v.Key))

		v.Value = lv.Value
	}

	if v.Inline == nil && lv.Inline != nil {
		log.TraceContext(ctx, "adopting local inline comment",
			slog.String("key", v.Key))

		inline := *lv.Inline
		v.Inline = &inline
	}

	if len(v.Comments) == 0 && len(lv.Comments) > 0 {
		log.TraceContext(ctx, "adopting local preceding comments",
			slog.String("key", v.Key),
			slog.Int("count", len(lv.Comments)))

		v.Comments = slices.Clone(lv.Comments)
	}
}

// Dropped returns the local keys absent from the template, in local document
// order. These keys do not appear in the merged result.
func Dropped(local, template *envfile.Document) []string {
	var dropped []string

	for _, key := range local.Keys() {
		if template.Get(key) == nil && !slices.Contains(dropped, key) {
			dropped = append(dropped, key)
		}
	}

	return dropped
}
