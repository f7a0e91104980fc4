package driving

import (
	"github.com/alfredtools/launchkit/internal/core/domain"
)

// BookmarkSearcher ranks bookmark candidates against a query.
type BookmarkSearcher interface {
	// Search scores every bookmark and returns the best matches in
	// descending score order. An empty query passes the first candidates
	// through unscored.
	Search(bookmarks []domain.Bookmark, query string) []domain.ScoredBookmark
}

// PathRanker ranks directory candidates against a query and an optional
// recency hint.
type PathRanker interface {
	// Rank scores every path, boosts the hint, and orders the result so
	// parent and descendant paths stay adjacent.
	Rank(paths []string, query, hint string) []domain.ScoredPath

	// Label returns the cosmetic display title for a ranked path. The
	// returned string is for presentation only; the path itself remains
	// the action value.
	Label(path string) string
}

// HostMatcher ranks SSH host candidates against a query.
type HostMatcher interface {
	// Match scores every host alias and drops weak matches. An empty
	// query passes all hosts through in input order.
	Match(hosts []domain.Host, query string) []domain.ScoredHost
}
