package profile

// Start begins profiling in the given mode, writing output beneath dir.
//
// The returned stop function is always safe to call. If the binary was built
// without the pprof build tag, or mode is empty or unrecognized, Start is a
// no-op.
func Start(mode, dir string) (stop func()) {
	if mode == "" {
		return func() {}
	}

	return start(mode, dir)
}
