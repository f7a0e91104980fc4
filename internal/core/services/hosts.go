package services

import (
	"sort"

	"github.com/alfredtools/launchkit/internal/core/domain"
	"github.com/alfredtools/launchkit/internal/core/ports/driving"
	"github.com/alfredtools/launchkit/internal/logger"
)

// Ensure HostService implements the interface.
var _ driving.HostMatcher = (*HostService)(nil)

// hostMatchCutoff excludes aliases whose similarity to the query is at or
// below this ratio.
const hostMatchCutoff = 0.3

// HostService ranks SSH host aliases by plain similarity to the query.
type HostService struct{}

// NewHostService creates a host matcher.
func NewHostService() *HostService {
	return &HostService{}
}

// Match scores every alias against the query, drops weak matches, and sorts
// the rest by score descending. Ties keep input order. An empty query skips
// scoring and passes all hosts through in input order.
func (s *HostService) Match(hosts []domain.Host, query string) []domain.ScoredHost {
	logger.Section("Host Ranking")
	logger.Debug("Candidates: %d, query: %q", len(hosts), query)

	if query == "" {
		out := make([]domain.ScoredHost, 0, len(hosts))
		for _, h := range hosts {
			out = append(out, domain.ScoredHost{Host: h})
		}
		return out
	}

	scored := make([]domain.ScoredHost, 0, len(hosts))
	for _, h := range hosts {
		score := Similarity(query, h.Alias)
		if score <= hostMatchCutoff {
			logger.Debug("Excluded %q (similarity %.2f)", h.Alias, score)
			continue
		}
		scored = append(scored, domain.ScoredHost{Host: h, Score: score})
	}
	logger.Debug("Matched %d of %d hosts", len(scored), len(hosts))

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
