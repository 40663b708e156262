// Package log provides the logging abstraction used by gifloop components.
//
// The assembler and the application services log through the Logger
// interface so that embedding programs can route messages into their own
// logging stack. A zerolog adapter and a no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	out, err := animate.Assemble(frames, delays, 0, animate.WithLogger(logger))
//
// Or discard everything:
//
//	logger := log.NewNoopLogger()
//
// # Version
//
// See version.go for version constants that can be used programmatically.
package log
