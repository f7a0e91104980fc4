package services

import (
	"sort"
	"strings"

	"github.com/alfredtools/launchkit/internal/core/domain"
	"github.com/alfredtools/launchkit/internal/core/ports/driven"
	"github.com/alfredtools/launchkit/internal/core/ports/driving"
	"github.com/alfredtools/launchkit/internal/logger"
)

// Ensure BookmarkService implements the interface.
var _ driving.BookmarkSearcher = (*BookmarkService)(nil)

// Score bands for the tiered bookmark rules. The tiers are mutually
// exclusive and the bands never overlap: an exact name match always
// outranks a name substring, which outranks a URL substring, which
// outranks any fuzzy match.
const (
	bookmarkExactScore = 1000
	bookmarkNameScore  = 500
	bookmarkURLScore   = 200

	// Fuzzy matches below this ratio are excluded entirely.
	bookmarkFuzzyCutoff = 0.3

	bookmarkResultLimit = 10
)

// BookmarkService scores bookmarks with tiered exact/substring/fuzzy rules.
type BookmarkService struct {
	translit driven.Transliterator
}

// NewBookmarkService creates a bookmark searcher. The transliterator is
// optional (can be nil); without it, names match on their literal text only.
func NewBookmarkService(translit driven.Transliterator) *BookmarkService {
	return &BookmarkService{translit: translit}
}

// Search scores every bookmark against the query and returns the ten best
// in descending score order. Zero-score bookmarks are excluded. An empty
// query skips scoring entirely and passes the first ten candidates through
// in input order.
func (s *BookmarkService) Search(bookmarks []domain.Bookmark, query string) []domain.ScoredBookmark {
	logger.Section("Bookmark Ranking")
	logger.Debug("Candidates: %d, query: %q", len(bookmarks), query)

	if query == "" {
		logger.Debug("Empty query, passing first %d bookmarks through", bookmarkResultLimit)
		n := min(len(bookmarks), bookmarkResultLimit)
		out := make([]domain.ScoredBookmark, 0, n)
		for _, b := range bookmarks[:n] {
			out = append(out, domain.ScoredBookmark{Bookmark: b})
		}
		return out
	}

	q := strings.ToLower(query)
	scored := make([]domain.ScoredBookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		score := s.score(b, q)
		if score == 0 {
			continue
		}
		scored = append(scored, domain.ScoredBookmark{Bookmark: b, Score: score})
	}
	logger.Debug("Matched %d of %d bookmarks", len(scored), len(bookmarks))

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > bookmarkResultLimit {
		scored = scored[:bookmarkResultLimit]
	}
	return scored
}

// score applies the tiered rules to one bookmark. The first matching tier
// wins; tiers are never summed.
func (s *BookmarkService) score(b domain.Bookmark, query string) int {
	name := strings.ToLower(b.Name)
	augmented := name
	if s.translit != nil {
		if tokens := s.translit.Transliterate(name); len(tokens) > 0 {
			augmented = name + strings.Join(tokens, "")
		}
	}
	url := strings.ToLower(b.URL)

	switch {
	case query == name || query == augmented:
		return bookmarkExactScore
	case strings.Contains(augmented, query):
		return bookmarkNameScore
	case strings.Contains(url, query):
		return bookmarkURLScore
	}

	if ratio := Similarity(query, name); ratio > bookmarkFuzzyCutoff {
		return int(ratio * 100)
	}
	return 0
}
