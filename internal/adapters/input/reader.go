// Package input contains the StatementSource adapters that acquire the
// CREATE TABLE text: files, pipes, an interactive prompt and an editor.
package input

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/example/koagen/internal/ports/secondary"
)

// ReaderSource reads the whole statement from a file or stream.
type ReaderSource struct {
	name string
	open func() (io.ReadCloser, error)
}

// NewFileSource reads the statement from path; "-" means stdin.
func NewFileSource(path string) *ReaderSource {
	if path == "-" {
		return NewStreamSource("stdin", os.Stdin)
	}
	return &ReaderSource{
		name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// NewStreamSource reads the statement from r until EOF. r is not closed.
func NewStreamSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{
		name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// Name describes the source.
func (s *ReaderSource) Name() string {
	return s.name
}

// ReadStatement reads everything the source holds.
func (s *ReaderSource) ReadStatement(ctx context.Context) (string, error) {
	rc, err := s.open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", s.name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.name, err)
	}
	return string(data), nil
}

// Ensure ReaderSource implements the interface
var _ secondary.StatementSource = (*ReaderSource)(nil)
