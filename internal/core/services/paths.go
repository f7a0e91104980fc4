package services

import (
	"sort"
	"strings"

	"github.com/alfredtools/launchkit/internal/core/domain"
	"github.com/alfredtools/launchkit/internal/core/ports/driving"
	"github.com/alfredtools/launchkit/internal/logger"
)

// Ensure PathService implements the interface.
var _ driving.PathRanker = (*PathService)(nil)

const (
	// matchPathDepth is how many trailing segments of a path take part in
	// matching; segments further from the tail are ignored.
	matchPathDepth = 5

	// fullMatchScore is the contribution of a token/segment pair whose
	// similarity reaches fullMatchCutoff; weaker pairs contribute
	// partMatchScore scaled by their ratio.
	fullMatchScore  = 1000
	partMatchScore  = 100
	fullMatchCutoff = 0.8

	// zoxideBoost is added to the candidate zoxide itself picked for the
	// query. It alone outranks any score achievable by text matching.
	zoxideBoost = 10000

	// pathResultLimit keeps display slots 0 through 10.
	pathResultLimit = 11
)

// PathService ranks directory candidates with depth-weighted per-segment
// fuzzy matching and keeps parent/descendant paths adjacent in the output.
type PathService struct {
	labels []domain.LabelRule
}

// NewPathService creates a path ranker. The label rules rewrite well-known
// root prefixes in display titles and may be empty.
func NewPathService(labels []domain.LabelRule) *PathService {
	return &PathService{labels: labels}
}

// Rank scores every path against the whitespace-delimited query tokens,
// boosts the recency hint, sorts by score, regroups so descendants ending
// in /src precede their ancestor, and truncates for presentation.
//
// Unlike bookmarks, zero-score paths stay eligible; with an empty query
// everything scores zero and input order is preserved.
func (s *PathService) Rank(paths []string, query, hint string) []domain.ScoredPath {
	logger.Section("Path Ranking")
	logger.Debug("Candidates: %d, query: %q, hint: %q", len(paths), query, hint)

	tokens := strings.Fields(query)
	scored := make([]domain.ScoredPath, 0, len(paths))
	for _, path := range paths {
		scored = append(scored, domain.ScoredPath{
			Path:  path,
			Score: scorePath(path, tokens),
		})
	}

	// The boost applies before sorting and before the hierarchy pass, so
	// a /src descendant can still be displayed ahead of a boosted ancestor.
	if hint != "" {
		for i := range scored {
			if scored[i].Path == hint {
				scored[i].Score += zoxideBoost
				logger.Debug("Recency hint boosted: %s", hint)
				break
			}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	scored = groupByHierarchy(scored)
	if len(scored) > pathResultLimit {
		scored = scored[:pathResultLimit]
	}
	logger.Debug("Returning %d paths", len(scored))
	return scored
}

// Label returns the cosmetic display title for a ranked path.
func (s *PathService) Label(path string) string {
	return domain.ApplyLabel(path, s.labels)
}

// scorePath accumulates the weighted contributions of every token against
// the last matchPathDepth segments of the path. Segments closer to the
// tail weigh more; each contribution is truncated to an integer.
func scorePath(path string, tokens []string) int {
	segments := domain.PathSegments(path)
	total := 0
	for _, token := range tokens {
		for i := 0; i < len(segments) && i < matchPathDepth; i++ {
			segment := segments[len(segments)-1-i]
			ratio := Similarity(token, segment)
			score := partMatchScore * ratio
			if ratio >= fullMatchCutoff {
				score = fullMatchScore
			}
			total += int(score * float64(matchPathDepth-i) / matchPathDepth)
		}
	}
	return total
}

// groupByHierarchy walks the score-sorted paths and emits each not-yet-placed
// path together with all its strict descendants. Within a group, descendants
// whose last segment is "src" move ahead of everything else; remaining group
// members keep score order. Descendant tests are segment-wise.
func groupByHierarchy(sorted []domain.ScoredPath) []domain.ScoredPath {
	out := make([]domain.ScoredPath, 0, len(sorted))
	placed := make(map[string]bool, len(sorted))

	for _, sp := range sorted {
		if placed[sp.Path] {
			continue
		}
		group := []domain.ScoredPath{sp}
		placed[sp.Path] = true

		for _, other := range sorted {
			if placed[other.Path] {
				continue
			}
			if domain.IsPathDescendant(sp.Path, other.Path) {
				group = append(group, other)
				placed[other.Path] = true
			}
		}

		sort.SliceStable(group, func(i, j int) bool {
			ri, rj := srcRank(group[i].Path), srcRank(group[j].Path)
			if ri != rj {
				return ri < rj
			}
			return group[i].Score > group[j].Score
		})
		out = append(out, group...)
	}
	return out
}

// srcRank orders paths ending in a src segment ahead of the rest.
func srcRank(path string) int {
	segments := domain.PathSegments(path)
	if len(segments) > 0 && segments[len(segments)-1] == "src" {
		return 0
	}
	return 1
}
