package head

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// copyLines writes up to n lines from r to w, each with its terminator as
// read. A last line without a newline is written as is. It returns the
// number of bytes written.
func copyLines(w io.Writer, r *bufio.Reader, n int) (int64, error) {
	var written int64
	for i := 0; i < n; i++ {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			m, werr := w.Write(line)
			written += int64(m)
			if werr != nil {
				return written, &outputError{err: werr}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// copyBytes writes up to n bytes from r to w as UTF-8 text. Invalid
// sequences, including a multi-byte character cut by the limit, become
// U+FFFD. It returns the number of input bytes consumed.
func copyBytes(w io.Writer, r io.Reader, n int64) (int64, error) {
	cr := &readTracker{r: io.LimitReader(r, n)}
	tw := transform.NewWriter(w, unicode.UTF8.NewDecoder())

	_, copyErr := io.Copy(tw, cr)
	closeErr := tw.Close()
	if cr.err != nil {
		return cr.n, cr.err
	}
	if copyErr != nil {
		return cr.n, &outputError{err: copyErr}
	}
	if closeErr != nil {
		return cr.n, &outputError{err: closeErr}
	}
	return cr.n, nil
}

// readTracker records the bytes read and the first read failure so they can
// be told apart from write failures after io.Copy.
type readTracker struct {
	r   io.Reader
	n   int64
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	t.n += int64(n)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}
