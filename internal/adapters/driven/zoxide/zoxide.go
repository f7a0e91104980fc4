// Package zoxide shells out to the zoxide directory-history tool.
// It implements the driven.PathHistory interface.
//
// Every call is one-shot and fail-fast: a missing binary or a non-zero
// exit degrades to an empty result, never an error that would break the
// invocation.
package zoxide

import (
	"context"
	"os/exec"
	"strings"

	"github.com/alfredtools/launchkit/internal/core/domain"
	"github.com/alfredtools/launchkit/internal/core/ports/driven"
	"github.com/alfredtools/launchkit/internal/logger"
)

// Ensure History implements the interface.
var _ driven.PathHistory = (*History)(nil)

// excludedRoots are directory trees never offered as candidates.
var excludedRoots = []string{
	"/Applications",
}

// History lists directories known to zoxide.
type History struct {
	bin string
}

// New returns a history backed by the zoxide binary on PATH.
func New() *History {
	return &History{bin: "zoxide"}
}

// Paths lists every directory in zoxide's database, best first, with
// excluded roots filtered out. Tool absence yields an empty list.
func (h *History) Paths(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, h.bin, "query", "--list").Output()
	if err != nil {
		logger.Warn("zoxide unavailable: %v", err)
		return nil, nil
	}

	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if excluded(line) {
			logger.Debug("Excluded path: %s", line)
			continue
		}
		paths = append(paths, line)
	}
	logger.Debug("zoxide paths loaded: %d", len(paths))
	return paths, nil
}

// Best asks zoxide for its single favourite match for the query tokens.
// Any failure, including an empty database, yields "".
func (h *History) Best(ctx context.Context, query string) string {
	args := append([]string{"query"}, strings.Fields(query)...)
	out, err := exec.CommandContext(ctx, h.bin, args...).Output()
	if err != nil {
		logger.Debug("zoxide query gave no hint: %v", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

func excluded(path string) bool {
	for _, root := range excludedRoots {
		if path == root || domain.IsPathDescendant(root, path) {
			return true
		}
	}
	return false
}
