package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/funcbase/cli/internal/domain"
)

// Writer implements domain.OutputWriter for stdout.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{out: os.Stdout}
}

// NewWriterTo creates a Writer that writes to the given writer. Used in
// tests to capture output.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

// Printf writes formatted output.
func (w *Writer) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(w.out, format, a...)
}

// Println writes a line of output.
func (w *Writer) Println(a ...any) (int, error) {
	return fmt.Fprintln(w.out, a...)
}

var _ domain.OutputWriter = (*Writer)(nil)
