// Package cmd implements the env-sync subcommands.
//
// Each command is a kong-bound struct whose Run method receives the
// [context.Context] established by the cli package. Commands write their
// primary output to the kong context's stdout so the cli package and tests
// can redirect it; diagnostics go through the log package.
package cmd
