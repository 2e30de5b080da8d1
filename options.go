package altsplice

import "io/fs"

// BuildOptions holds per-call options for Build and Splice.
type BuildOptions struct {
	Sink DiagnosticSink
	FS   fs.FS
}

// Option is a function that configures BuildOptions.
type Option func(*BuildOptions)

// WithDiagnosticSink routes validation warnings to sink instead of the
// package logger.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(opts *BuildOptions) {
		opts.Sink = sink
	}
}

// WithFS reads source files from fsys instead of the host filesystem. Paths
// resolve against the config's base directory inside fsys; the safe-mode
// policy applies unchanged.
func WithFS(fsys fs.FS) Option {
	return func(opts *BuildOptions) {
		opts.FS = fsys
	}
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() *BuildOptions {
	return &BuildOptions{
		Sink: logSink{},
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *BuildOptions {
	options := defaultBuildOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
