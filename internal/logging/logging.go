// Package logging defines the logging collaborator every component in the
// pipeline accepts, without pinning callers to a concrete implementation.
package logging

import (
	"log"
	"os"
)

// Logger is the minimal surface the pipeline needs from a logger. A
// *log.Logger satisfies it directly.
type Logger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// New builds a logger writing to stderr, prefixed by the component name,
// with standard flags. This mirrors how the teacher wires crawler.New's
// *log.Logger.
func New(prefix string) *log.Logger {
	return log.New(os.Stderr, prefix+": ", log.LstdFlags)
}
