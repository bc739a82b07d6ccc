// ABOUTME: File-backed output writer that persists one JSON array per category
// ABOUTME: Writes UTF-8 with two-space indentation and replaces the file atomically

package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
	coreerrors "github.com/AllrounderTechBrief/TheStreamic/core/errors"
)

// FileWriter implements interfaces.OutputWriter on the local filesystem
type FileWriter struct {
	dir string
}

// NewFileWriter creates a writer rooted at dir
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Dir returns the output directory
func (w *FileWriter) Dir() string {
	return w.dir
}

// Write encodes items as a JSON array into the category's output file and returns its path.
// A nil slice is written as an empty array.
func (w *FileWriter) Write(ctx context.Context, category domain.Category, items []domain.FeedItem) (string, error) {
	path := filepath.Join(w.dir, category.OutputFile())
	if err := ctx.Err(); err != nil {
		return path, &coreerrors.WriteError{Path: path, Err: err}
	}

	if items == nil {
		items = []domain.FeedItem{}
	}

	data, err := Encode(items)
	if err != nil {
		return path, &coreerrors.WriteError{Path: path, Err: err}
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return path, &coreerrors.WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(w.dir, ".streamic-*.json")
	if err != nil {
		return path, &coreerrors.WriteError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return path, &coreerrors.WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return path, &coreerrors.WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return path, &coreerrors.WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return path, &coreerrors.WriteError{Path: path, Err: err}
	}
	return path, nil
}

// Encode renders items the way they are stored: indented, with HTML and non-ASCII left unescaped
func Encode(items []domain.FeedItem) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
