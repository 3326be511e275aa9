// Package log provides the error logger the consumer falls back to when no
// custom handler is configured.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
)

// NewDefault returns a logger writing to stderr.
func NewDefault() *Default {
	return New(os.Stderr)
}

// New returns a logger writing to the given writer.
func New(w io.Writer) *Default {
	return &Default{w: w}
}

// Default is the default implementation of the error logger.
type Default struct {
	w io.Writer
}

// Error prints the given error to the configured writer.
func (d *Default) Error(_ context.Context, err error) {
	fmt.Fprintln(d.w, err.Error())
}
