package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_Identity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"equal", "python", "python"},
		{"case insensitive", "Python Docs", "python docs"},
		{"both empty", "", ""},
		{"non latin", "中心", "中心"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1.0, Similarity(tt.a, tt.b))
		})
	}
}

func TestSimilarity_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "python"))
	assert.Equal(t, 0.0, Similarity("python", ""))
}

func TestSimilarity_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"prod", "prod-db"},
		{"myproj", "work"},
		{"python", "pythn"},
		{"short", "a much longer string"},
	}

	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]),
			"similarity(%q, %q) should be symmetric", p[0], p[1])
	}
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"prod", "staging-web"},
		{"a", "ab"},
		{"query", "candidate"},
		{"launchkit", "launchpad"},
		{"中心", "zhongxin"},
	}

	for _, p := range pairs {
		ratio := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, ratio, 0.0)
		assert.LessOrEqual(t, ratio, 1.0)
	}
}

func TestSimilarity_KnownRatios(t *testing.T) {
	// One edit over six characters.
	assert.InDelta(t, 5.0/6.0, Similarity("pythn", "python"), 0.001)
	// Three inserts over seven characters.
	assert.InDelta(t, 4.0/7.0, Similarity("prod", "prod-db"), 0.001)
}
