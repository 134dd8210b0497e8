package simplesvg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer is the interface for document writers.
type Writer interface {
	Save(path string) error
	WriteTo(w io.Writer) (int64, error)
}

// WriterType represents the output format.
type WriterType string

const (
	WriterSVG WriterType = "SVG"
)

// NewWriter creates a writer for the given format.
func NewWriter(d *Document, format WriterType) (Writer, error) {
	switch format {
	case WriterSVG:
		return &SVGWriter{document: d}, nil
	default:
		return nil, fmt.Errorf("unsupported writer format: %s", format)
	}
}

// SVGWriter writes documents as SVG text.
type SVGWriter struct {
	document *Document
}

// Save writes the document to a file.
func (w *SVGWriter) Save(path string) error {
	if path == "" {
		return errors.New("empty file name")
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, writeErr := w.WriteTo(f)
	closeErr := f.Close()

	if writeErr != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write document: %w", writeErr)
	}
	return closeErr
}

// WriteTo writes the document to a writer.
func (w *SVGWriter) WriteTo(out io.Writer) (int64, error) {
	if w.document == nil {
		return 0, errors.New("document is nil")
	}
	return w.document.WriteTo(out)
}
