package chrome

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredtools/launchkit/internal/core/domain"
)

const sampleBookmarks = `{
  "roots": {
    "bookmark_bar": {
      "type": "folder",
      "name": "Bookmarks Bar",
      "children": [
        {"type": "url", "name": "Python Docs", "url": "https://docs.python.org"},
        {
          "type": "folder",
          "name": "Dev",
          "children": [
            {"type": "url", "name": "Go Docs", "url": "https://go.dev/doc"}
          ]
        }
      ]
    },
    "other": {
      "type": "folder",
      "name": "Other Bookmarks",
      "children": [
        {"type": "url", "name": "News", "url": "https://news.ycombinator.com"}
      ]
    },
    "synced": {
      "type": "folder",
      "name": "Mobile Bookmarks",
      "children": [
        {"type": "url", "name": "Phone", "url": "https://example.com/phone"}
      ]
    }
  }
}`

func writeProfile(t *testing.T, dir, profile, content string) {
	t.Helper()
	p := filepath.Join(dir, profile)
	require.NoError(t, os.MkdirAll(p, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(p, "Bookmarks"), []byte(content), 0o644))
}

func TestSource_Bookmarks(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "Profile 1", sampleBookmarks)

	got, err := NewAt(dir, "Profile 1").Bookmarks(context.Background())
	require.NoError(t, err)

	// Flattened in root order, folders walked depth-first.
	assert.Equal(t, []domain.Bookmark{
		{Name: "Python Docs", URL: "https://docs.python.org"},
		{Name: "Go Docs", URL: "https://go.dev/doc"},
		{Name: "News", URL: "https://news.ycombinator.com"},
		{Name: "Phone", URL: "https://example.com/phone"},
	}, got)
}

func TestSource_BookmarksProfileFallback(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "Default", sampleBookmarks)

	got, err := NewAt(dir, "Profile 99").Bookmarks(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestSource_BookmarksMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")

	_, err := NewAt(dir, "Default").Bookmarks(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSource_BookmarksNoProfiles(t *testing.T) {
	_, err := NewAt(t.TempDir(), "Default").Bookmarks(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSource_BookmarksCorrupted(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "Default", "{not json")

	_, err := NewAt(dir, "Default").Bookmarks(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorrupted)
}

func TestSource_Profiles(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "Profile 2", sampleBookmarks)
	writeProfile(t, dir, "Default", sampleBookmarks)

	// Directories without a Bookmarks file and plain files are skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "System Profile"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Local State"), []byte("{}"), 0o644))

	got, err := NewAt(dir, "").Profiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"Default", "Profile 2"}, got)
}
