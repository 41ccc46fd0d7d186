package merge

import (
	"github.com/anotherempty/env-sync/envfile"
)

// Sentinel errors for the file-level sync workflow. All are [*envfile.Error]
// values and can be tested with errors.Is; wrapped copies carry the
// underlying OS or parse error plus the affected path as a log attribute.
//
//nolint:gochecknoglobals
var (
	// ErrTemplateMissing reports a template path that does not exist. It is
	// distinct from a generic read failure because it usually means a user
	// typo rather than a transient condition.
	ErrTemplateMissing = envfile.NewError("template file not found")

	ErrCreateLocal   = envfile.NewError("failed to create local file")
	ErrLockLocal     = envfile.NewError("failed to lock local file")
	ErrReadLocal     = envfile.NewError("failed to read local file")
	ErrReadTemplate  = envfile.NewError("failed to read template file")
	ErrParseLocal    = envfile.NewError("failed to parse local file")
	ErrParseTemplate = envfile.NewError("failed to parse template file")
	ErrWriteLocal    = envfile.NewError("failed to write local file")
)
