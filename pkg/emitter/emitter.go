package emitter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document is one JSON output file.
type Document struct {
	Name string // slash-separated path relative to the output root, without ".json"
	Body any
}

// Writer writes documents under a root directory.
type Writer struct {
	Root string
}

// New returns a Writer rooted at dir.
func New(dir string) *Writer {
	return &Writer{Root: dir}
}

// Path returns the file path a document with the given name is written to.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.Root, filepath.FromSlash(name)+".json")
}

// Write serializes doc as 2-space indented JSON and writes it, creating
// parent directories as needed. It returns the written path.
func (w *Writer) Write(doc Document) (string, error) {
	data, err := Encode(doc.Body)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", doc.Name, err)
	}

	path := w.Path(doc.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}

	return path, nil
}

// WriteAll writes docs in order and stops at the first failure.
// Files written before the failure are left in place.
func (w *Writer) WriteAll(docs []Document, written func(doc Document, path string)) error {
	for _, doc := range docs {
		path, err := w.Write(doc)
		if err != nil {
			return err
		}
		if written != nil {
			written(doc, path)
		}
	}
	return nil
}

// Encode renders v as JSON indented with two spaces, without a trailing newline.
func Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
