// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// The package offers configurable output format, minimum level (including a
// trace level below debug), timestamp layout, caller information, and
// colorized pretty printing for terminal output. Configuration is applied
// with functional options at logger creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// A package-level default logger is also provided. It is reconfigured once
// during CLI startup via [Config] and used throughout the module:
//
//	log.Config(log.WithLevel(log.LevelTrace))
//	log.Debug("parsed document", slog.Int("entries", n))
//
// Every level has a context-aware variant ([Logger.DebugContext] and friends).
// The context-unaware variants call them with [DefaultContextProvider].
package log
