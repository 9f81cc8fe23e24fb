// Package head prints a bounded prefix of each configured source.
package head

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/clarabennett2626/headr/internal/config"
	"github.com/clarabennett2626/headr/internal/source"
	"github.com/clarabennett2626/headr/internal/tui"
)

// Program prefixes every failure line.
const Program = "headr"

// ReadError reports an I/O failure on a source that was opened successfully.
type ReadError struct {
	ID  string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %s", e.ID, source.Cause(e.Err))
}

func (e *ReadError) Unwrap() error { return e.Err }

// outputError wraps a failed write to the primary output.
type outputError struct{ err error }

func (e *outputError) Error() string { return "writing output: " + e.err.Error() }
func (e *outputError) Unwrap() error { return e.err }

// Result is the outcome for one source.
type Result struct {
	ID string
	// Consumed is the number of input bytes passed to the output.
	Consumed int64
	// Err is nil, a *source.OpenError or a *ReadError.
	Err error
}

// Summary collects the per-source results of one run, in source order.
type Summary struct {
	Results []Result
}

// Failed returns the number of sources that could not be fully processed.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRenderConfig sets header and failure styling.
func WithRenderConfig(cfg tui.RenderConfig) Option {
	return func(e *Engine) { e.render = cfg }
}

// WithSourceOptions passes options through to source.Open.
func WithSourceOptions(opts ...source.Option) Option {
	return func(e *Engine) { e.sourceOpts = append(e.sourceOpts, opts...) }
}

// Engine reads sources one at a time and writes their bounded prefixes to
// the output. Per-source failures go to the error stream and never stop the
// batch.
type Engine struct {
	out        io.Writer
	errOut     io.Writer
	logger     *slog.Logger
	render     tui.RenderConfig
	sourceOpts []source.Option

	outStyle *tui.Renderer
	errStyle *tui.Renderer
}

// New creates an Engine writing content to out and failures to errOut.
func New(out, errOut io.Writer, opts ...Option) *Engine {
	e := &Engine{
		out:    out,
		errOut: errOut,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		render: tui.DefaultConfig(),
	}
	for _, o := range opts {
		o(e)
	}
	e.outStyle = tui.NewRenderer(out, e.render)
	e.errStyle = tui.NewRenderer(errOut, e.render)
	return e
}

// Run processes every source in cfg in order. The returned error is non-nil
// only when writing to the primary output fails; source failures are
// reported on the error stream and recorded in the Summary.
func (e *Engine) Run(cfg *config.Config) (Summary, error) {
	var summary Summary
	lim := cfg.Limit()
	multi := cfg.MultiSource()
	e.logger.Debug("Run started.", "sources", len(cfg.Sources()), "limit", lim.String())

	headerWritten := false
	for _, id := range cfg.Sources() {
		res, err := e.runSource(id, lim, multi, headerWritten)
		if err != nil {
			return summary, err
		}
		// A source that fails to open prints no header, so the blank
		// separator goes before every header but the first one printed.
		var oe *source.OpenError
		if multi && !errors.As(res.Err, &oe) {
			headerWritten = true
		}
		if res.Err != nil {
			e.report(res)
		}
		summary.Results = append(summary.Results, res)
	}

	e.logger.Debug("Run finished.", "sources", len(summary.Results), "failed", summary.Failed())
	return summary, nil
}

// runSource opens, reads and releases one source.
func (e *Engine) runSource(id string, lim config.Limit, multi, headerWritten bool) (Result, error) {
	res := Result{ID: id}

	src, err := source.Open(id, e.sourceOpts...)
	if err != nil {
		res.Err = err
		return res, nil
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			e.logger.Debug("Closing source failed.", "source", id, "error", cerr)
		}
	}()
	e.logger.Debug("Source opened.", "source", id)

	if multi {
		if err := e.writeHeader(id, headerWritten); err != nil {
			return res, err
		}
	}

	switch lim.(type) {
	case config.ByteLimit:
		res.Consumed, err = copyBytes(e.out, src.Reader(), int64(lim.Count()))
	case config.LineLimit:
		res.Consumed, err = copyLines(e.out, src.Reader(), lim.Count())
	default:
		panic(fmt.Sprintf("head: unknown limit type %T", lim))
	}

	var oerr *outputError
	if errors.As(err, &oerr) {
		return res, oerr
	}
	if err != nil {
		res.Err = &ReadError{ID: id, Err: err}
	}
	e.logger.Debug("Source done.", "source", id, "consumed", res.Consumed)
	return res, nil
}

func (e *Engine) writeHeader(id string, separate bool) error {
	sep := ""
	if separate {
		sep = "\n"
	}
	if _, err := fmt.Fprintf(e.out, "%s%s\n", sep, e.outStyle.Header(id)); err != nil {
		return &outputError{err: err}
	}
	return nil
}

// report writes a failure line for res to the error stream.
func (e *Engine) report(res Result) {
	var cause error
	var oe *source.OpenError
	var re *ReadError
	switch {
	case errors.As(res.Err, &oe):
		cause = oe.Err
	case errors.As(res.Err, &re):
		cause = re.Err
	default:
		cause = res.Err
	}
	e.logger.Debug("Source failed.", "source", res.ID, "error", res.Err)
	fmt.Fprintln(e.errOut, e.errStyle.Failure(Program, res.ID, source.Cause(cause)))
}
