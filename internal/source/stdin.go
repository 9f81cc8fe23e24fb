package source

import (
	"bufio"
	"io"
)

// StdinSource reads standard input. It is designed to work with piped input
// such as:
//
//	kubectl logs pod | headr -n 20
//	cat app.log | headr -c 512
//
// Close leaves the process stdin open so "-" can be listed more than once.
type StdinSource struct {
	reader *bufio.Reader
}

func newStdinSource(r io.Reader, bufSize int) *StdinSource {
	return &StdinSource{reader: bufio.NewReaderSize(r, bufSize)}
}

func (s *StdinSource) ID() string            { return StdinID }
func (s *StdinSource) Reader() *bufio.Reader { return s.reader }
func (s *StdinSource) Close() error          { return nil }
