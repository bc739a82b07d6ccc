package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
	coreerrors "github.com/AllrounderTechBrief/TheStreamic/core/errors"
)

func TestFileWriter_WritesArray(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	w := NewFileWriter(dir)
	items := []domain.FeedItem{
		domain.NewFeedItem("Première & <mise à jour>", "https://example.com/a?x=1&y=2", "Frame.io Insider", "https://example.com/a.jpg"),
		domain.NewFeedItem("日本語のタイトル", "https://example.com/b", "Source", ""),
	}

	path, err := w.Write(context.Background(), domain.Category{Name: "editing"}, items)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out-editing.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Première & <mise à jour>")
	assert.Contains(t, text, "日本語のタイトル")
	assert.Contains(t, text, "x=1&y=2")
	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"title\""))

	var decoded []domain.FeedItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, items, decoded)
}

func TestFileWriter_EmptyAndNil(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)

	for _, items := range [][]domain.FeedItem{nil, {}} {
		path, err := w.Write(context.Background(), domain.Category{Name: "hardware"}, items)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	}
}

func TestFileWriter_EmptyImageSerialized(t *testing.T) {
	data, err := Encode([]domain.FeedItem{domain.NewFeedItem("T", "https://example.com", "S", "")})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"image": ""`)
}

func TestFileWriter_CustomFileName(t *testing.T) {
	dir := t.TempDir()
	path, err := NewFileWriter(dir).Write(context.Background(), domain.Category{Name: "x", File: "custom.json"}, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.json"), path)
}

func TestFileWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)
	cat := domain.Category{Name: "editing"}

	_, err := w.Write(context.Background(), cat, []domain.FeedItem{domain.NewFeedItem("old", "https://e/1", "S", "")})
	require.NoError(t, err)
	path, err := w.Write(context.Background(), cat, []domain.FeedItem{domain.NewFeedItem("new", "https://e/2", "S", "")})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old")
	assert.Contains(t, string(data), "new")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileWriter_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewFileWriter(filepath.Join(blocker, "data")).Write(context.Background(), domain.Category{Name: "a"}, nil)

	require.Error(t, err)
	assert.True(t, coreerrors.IsWrite(err))
}

func TestFileWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileWriter(t.TempDir()).Write(ctx, domain.Category{Name: "a"}, nil)

	assert.True(t, coreerrors.IsWrite(err))
	assert.ErrorIs(t, err, context.Canceled)
}
