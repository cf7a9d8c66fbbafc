package domain

import (
	"io"
	"time"
)

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf writes formatted output.
	Printf(format string, a ...any) (int, error)

	// Println writes a line of output.
	Println(a ...any) (int, error)
}

// Styler applies semantic styles to strings for terminal display.
type Styler interface {
	Success(s string) string
	Warning(s string) string
	Error(s string) string
	Info(s string) string
	Muted(s string) string
	Header(s string) string
}

// Invocation is one recorded function execution.
type Invocation struct {
	ID         int64
	Function   string
	Route      string
	Method     string
	Status     int
	DurationMs int64
	CreatedAt  time.Time
}

// InvocationStore persists and queries function invocations.
type InvocationStore interface {
	// Insert adds an invocation record.
	Insert(inv Invocation) error

	// List returns the most recent invocations, newest first.
	List(limit int) ([]Invocation, error)

	// Close closes the store connection.
	Close() error
}

// Application bundles the shared services actions depend on.
// Constructed once by the app factory and handed to action factories,
// which pick the members they need.
type Application struct {
	Logger Logger
	Output OutputWriter
	Styler Styler
	Store  InvocationStore
}
