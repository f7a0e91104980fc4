package services

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Similarity returns a case-insensitive edit-distance similarity ratio in
// [0, 1]. It is 1.0 only for case-insensitive equality (including two empty
// strings) and 0.0 when exactly one side is empty or the strings share no
// common content.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	ratio, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0.0
	}
	return float64(ratio)
}
