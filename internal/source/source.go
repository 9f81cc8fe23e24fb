// Package source opens the inputs headr reads from: named files and
// standard input.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

const (
	// StdinID is the identifier that selects standard input.
	StdinID = "-"

	// DefaultBufferSize is the read buffer size for every opened source.
	DefaultBufferSize = 64 * 1024
)

// Source is an opened, exclusively owned input stream.
type Source interface {
	// ID returns the identifier the source was opened with.
	ID() string
	// Reader returns the buffered stream positioned at the start of the input.
	Reader() *bufio.Reader
	// Close releases the underlying handle. It is safe to call more than once.
	Close() error
}

// OpenError reports a source that could not be opened.
type OpenError struct {
	ID  string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %s", e.ID, Cause(e.Err))
}

func (e *OpenError) Unwrap() error { return e.Err }

// Cause returns the text of err without the path prefix that *fs.PathError adds,
// so messages that already name the source do not repeat it.
func Cause(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

// Option configures how sources are opened.
type Option func(*options)

type options struct {
	stdin io.Reader
}

// WithStdin overrides the process standard input (useful for testing).
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// Open resolves id to a Source. StdinID selects standard input; anything
// else is a file path. A failure is always an *OpenError.
func Open(id string, opts ...Option) (Source, error) {
	o := options{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}
	if id == StdinID {
		return newStdinSource(o.stdin, DefaultBufferSize), nil
	}
	return openFile(id, DefaultBufferSize)
}
