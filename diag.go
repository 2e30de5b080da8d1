package altsplice

import "go.uber.org/zap"

// Diagnostic is one recovered validation failure: the literal warning
// message and the source location of the offending node.
type Diagnostic struct {
	Message  string
	Location Location
}

// DiagnosticSink receives validation warnings. Failures are recovered
// locally: they surface here and never as Go errors.
type DiagnosticSink interface {
	Warn(message string, loc Location)
}

// logSink is the default sink, warning through the package logger.
type logSink struct{}

func (logSink) Warn(message string, loc Location) {
	fields := []zap.Field{zap.String("file", loc.Path)}
	if loc.Line > 0 {
		fields = append(fields, zap.Int("line", loc.Line))
	}
	Logger.Warn(message, fields...)
}

// CollectSink gathers diagnostics in memory, for tests and tooling that
// inspect warnings instead of logging them.
type CollectSink struct {
	Diagnostics []Diagnostic
}

// Warn appends the diagnostic.
func (s *CollectSink) Warn(message string, loc Location) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Message: message, Location: loc})
}
