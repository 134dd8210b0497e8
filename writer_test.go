package simplesvg

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestNewWriter(t *testing.T) {
	doc := NewDocument("", DefaultLayout())
	w, err := NewWriter(doc, WriterSVG)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.String() != doc.String() {
		t.Error("writer output differs from the document")
	}

	if _, err := NewWriter(doc, "PDF"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSVGWriter_NilDocument(t *testing.T) {
	w := &SVGWriter{}
	if _, err := w.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("expected error for nil document")
	}
	if err := w.Save(filepath.Join(t.TempDir(), "x.svg")); err == nil {
		t.Error("expected error saving a nil document")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGWriter_WriteError(t *testing.T) {
	doc := NewDocument("", DefaultLayout())
	if _, err := doc.WriteTo(failingWriter{}); err == nil {
		t.Error("expected write error")
	}
}
