package altsplice

import "go.uber.org/zap"

// Logger is the package logger; the default diagnostic sink warns through
// it. Falls back to a no-op logger if production setup fails.
var Logger = func() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}()

// SetLogger replaces the package logger.
func SetLogger(logger *zap.Logger) {
	Logger = logger
}
