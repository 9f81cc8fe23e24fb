package source

import (
	"bufio"
	"os"
)

// FileSource reads a named file.
type FileSource struct {
	path   string
	f      *os.File
	reader *bufio.Reader
}

func openFile(path string, bufSize int) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{ID: path, Err: err}
	}
	return &FileSource{
		path:   path,
		f:      f,
		reader: bufio.NewReaderSize(f, bufSize),
	}, nil
}

func (fs *FileSource) ID() string            { return fs.path }
func (fs *FileSource) Reader() *bufio.Reader { return fs.reader }

// Close closes the file handle.
func (fs *FileSource) Close() error {
	if fs.f == nil {
		return nil
	}
	err := fs.f.Close()
	fs.f = nil
	return err
}
