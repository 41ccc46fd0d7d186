package cmd

import (
	"github.com/anotherempty/env-sync/envfile"
)

// Sentinel errors shared by the subcommands. All are [*envfile.Error] values
// and can be tested with errors.Is.
//
//nolint:gochecknoglobals
var (
	ErrOpenSource    = envfile.NewError("failed to open source file")
	ErrParseSource   = envfile.NewError("failed to parse source file")
	ErrWriteOutput   = envfile.NewError("failed to write output")
	ErrJSONMarshal   = envfile.NewError("failed to marshal JSON")
	ErrYAMLMarshal   = envfile.NewError("failed to marshal YAML")
	ErrRenderDiff    = envfile.NewError("failed to render diff")
	ErrFilterCompile = envfile.NewError("invalid filter expression")
	ErrFilterEval    = envfile.NewError("failed to evaluate filter expression")
)
