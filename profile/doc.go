// Package profile provides optional runtime profiling for the env-sync
// command.
//
// The package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), all operations are no-ops
// with zero runtime overhead.
//
// # Available Profiling Modes
//
// The following modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Usage
//
//	stop := profile.Start("cpu", "/tmp/profiles")
//	defer stop()
//
// Profile files are written to the given directory with names matching the
// profiling mode (e.g. cpu.pprof). Analyze them with:
//
//	go tool pprof ./env-sync /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
