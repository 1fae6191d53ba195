package core

// Logger is the logging sink used by the renderer and the scene loaders
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards everything; handy in tests and library callers that want silence
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...any) {}
