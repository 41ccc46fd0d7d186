// Package cli contains the command line interface for env-sync.
//
// # Usage
//
// Running without a subcommand performs a sync, merging the template file
// into the local env file:
//
//	env-sync
//	env-sync --template deploy/.env.template --local .env
//
// Other subcommands inspect rather than modify:
//
//	env-sync diff --exit-code
//	env-sync fmt json .env
//	env-sync list --filter 'value == ""' .env
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/env-sync/pprof)
package cli
