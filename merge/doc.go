// Package merge reconciles a local env document with a template document
// under a one-directional precedence policy, and synchronizes the result back
// to disk.
//
// The template's entry sequence is the structural skeleton of the result: its
// entry count, order, comments, and keys are authoritative. The local
// document only supplies values and comments for template variables that
// leave the corresponding field empty. Local-only keys do not survive the
// merge; the template defines the final key set.
//
// [Merge] is the pure document-level operation. [Sync] wraps it with the
// file-level workflow: resolving default paths, creating a missing local
// file, locking it for the read-merge-write window, and reporting dropped
// local-only keys.
package merge
