package renderer

import (
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

// Printf implements core.Logger
func (dl *DefaultLogger) Printf(format string, args ...any) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
