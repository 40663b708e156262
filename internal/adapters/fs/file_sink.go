package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// FileSink implements ports.AnimationSink by writing a file atomically.
type FileSink struct {
	path string
}

// NewFileSink creates a FileSink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Write persists data atomically.
// Uses atomic write (write to temp file, then rename) so that viewers
// never load a partial animation.
func (s *FileSink) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	// Atomic rename
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Location returns the output path.
func (s *FileSink) Location() string {
	return s.path
}

// WriterSink implements ports.AnimationSink on an io.Writer such as
// standard output.
type WriterSink struct {
	w    io.Writer
	name string
}

// NewWriterSink creates a WriterSink. name is reported by Location.
func NewWriterSink(w io.Writer, name string) *WriterSink {
	return &WriterSink{w: w, name: name}
}

// Write copies data to the underlying writer.
func (s *WriterSink) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.w.Write(data)
	return err
}

// Location returns the sink name.
func (s *WriterSink) Location() string {
	return s.name
}
