package domain

import "strings"

// ScoredPath pairs a candidate path with its accumulated score.
type ScoredPath struct {
	Path  string
	Score int
}

// PathSegments splits a /-delimited path into its non-empty segments.
func PathSegments(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// IsPathDescendant reports whether child lies strictly below parent.
// The comparison is segment-wise, so "/home/user2" is not a descendant
// of "/home/user" and a path is never a descendant of itself.
func IsPathDescendant(parent, child string) bool {
	ps := PathSegments(parent)
	cs := PathSegments(child)
	if len(cs) <= len(ps) {
		return false
	}
	for i := range ps {
		if cs[i] != ps[i] {
			return false
		}
	}
	return true
}

// LabelRule rewrites paths under Root to a short bracketed Label.
type LabelRule struct {
	Root  string
	Label string
}

// ApplyLabel returns the display form of path: the first rule whose root
// is a strict ancestor has that prefix replaced with its label. The path
// itself is never rewritten to a bare label, and paths outside every root
// are returned unchanged. The underlying path is untouched; callers keep
// it as the action value.
func ApplyLabel(path string, rules []LabelRule) string {
	for _, rule := range rules {
		if !IsPathDescendant(rule.Root, path) {
			continue
		}
		rel := PathSegments(path)[len(PathSegments(rule.Root)):]
		return rule.Label + " " + strings.Join(rel, "/")
	}
	return path
}
