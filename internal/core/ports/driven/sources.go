package driven

import (
	"context"

	"github.com/alfredtools/launchkit/internal/core/domain"
)

// BookmarkSource supplies browser bookmark candidates.
type BookmarkSource interface {
	// Bookmarks returns every bookmark of the selected browser profile,
	// flattened to (name, url) records. A missing bookmarks file yields
	// domain.ErrNotFound, an unparsable one domain.ErrCorrupted.
	Bookmarks(ctx context.Context) ([]domain.Bookmark, error)
}

// HostSource supplies SSH host candidates.
type HostSource interface {
	// Hosts returns every Host stanza of the client config in file order.
	// A missing config yields domain.ErrNotFound.
	Hosts(ctx context.Context) ([]domain.Host, error)
}

// PathHistory supplies directory candidates from an external
// directory-history tool, plus its opinion on the best target.
type PathHistory interface {
	// Paths lists every known directory. Tool absence or a non-zero exit
	// degrades to an empty list, never an error.
	Paths(ctx context.Context) ([]string, error)

	// Best returns the single path the tool considers the most likely
	// target for the query, or "" when the tool is absent or undecided.
	Best(ctx context.Context, query string) string
}
