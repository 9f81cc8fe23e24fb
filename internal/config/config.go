// Package config builds the immutable run configuration for headr.
package config

import (
	"errors"
	"fmt"

	"github.com/clarabennett2626/headr/internal/limit"
	"github.com/clarabennett2626/headr/internal/source"
)

const (
	// DefaultLines is the line count used when neither -n nor -c is given.
	DefaultLines = "10"
	// Stdin is the source identifier that selects standard input.
	Stdin = source.StdinID
)

// ErrConflictingOptions is returned when both a line and a byte count are supplied.
var ErrConflictingOptions = errors.New("the line count and byte count options cannot be used together")

// Limit bounds how much of each source is printed. It is either a
// LineLimit or a ByteLimit, never both.
type Limit interface {
	// Count is the positive number of lines or bytes.
	Count() int
	fmt.Stringer
	sealed()
}

// LineLimit prints at most that many complete lines per source.
type LineLimit int

// ByteLimit prints at most that many bytes per source.
type ByteLimit int

func (l LineLimit) Count() int     { return int(l) }
func (l LineLimit) String() string { return fmt.Sprintf("%d lines", int(l)) }
func (LineLimit) sealed()          {}

func (b ByteLimit) Count() int     { return int(b) }
func (b ByteLimit) String() string { return fmt.Sprintf("%d bytes", int(b)) }
func (ByteLimit) sealed()          {}

// LimitError is the fatal error for a rejected -n or -c value.
type LimitError struct {
	// Unit is "line" or "byte".
	Unit string
	Err  *limit.InvalidError
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("illegal %s count -- %s", e.Unit, e.Err.Token)
}

func (e *LimitError) Unwrap() error { return e.Err }

// Options holds the raw option tokens as handed over by the command line.
// A nil token means the option was not supplied.
type Options struct {
	Lines   *string
	Bytes   *string
	Sources []string
	// FallbackLines is the line count token used when Lines is nil, typically
	// taken from a defaults file. Empty falls back to the DefaultLines const.
	FallbackLines string
}

// Config is the validated configuration for one invocation.
type Config struct {
	sources []string
	limit   Limit
}

// New validates opts. Every error it returns is fatal: no source may be
// touched when New fails.
func New(opts Options) (*Config, error) {
	if opts.Lines != nil && opts.Bytes != nil {
		return nil, ErrConflictingOptions
	}

	var lim Limit
	if opts.Bytes != nil {
		n, err := parseCount("byte", *opts.Bytes)
		if err != nil {
			return nil, err
		}
		lim = ByteLimit(n)
	} else {
		token := opts.FallbackLines
		if token == "" {
			token = DefaultLines
		}
		if opts.Lines != nil {
			token = *opts.Lines
		}
		n, err := parseCount("line", token)
		if err != nil {
			return nil, err
		}
		lim = LineLimit(n)
	}

	sources := make([]string, len(opts.Sources))
	copy(sources, opts.Sources)
	if len(sources) == 0 {
		sources = []string{Stdin}
	}
	return &Config{sources: sources, limit: lim}, nil
}

func parseCount(unit, token string) (int, error) {
	n, err := limit.Parse(token)
	if err != nil {
		var ie *limit.InvalidError
		errors.As(err, &ie)
		return 0, &LimitError{Unit: unit, Err: ie}
	}
	return n, nil
}

// Sources returns a copy of the ordered source identifiers.
func (c *Config) Sources() []string {
	out := make([]string, len(c.sources))
	copy(out, c.sources)
	return out
}

// Limit returns the active bound.
func (c *Config) Limit() Limit { return c.limit }

// MultiSource reports whether per-source headers are printed.
func (c *Config) MultiSource() bool { return len(c.sources) > 1 }
