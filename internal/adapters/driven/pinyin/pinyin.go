// Package pinyin transliterates Han script into latin phonetic tokens.
// It implements the driven.Transliterator interface.
//
// The real adapter wraps github.com/mozillazg/go-pinyin; Noop is the stub
// selected when transliteration is disabled. Both are chosen once at
// process start, and the scoring core only ever sees the interface.
package pinyin

import (
	gopinyin "github.com/mozillazg/go-pinyin"

	"github.com/alfredtools/launchkit/internal/core/ports/driven"
)

// Ensure both implementations satisfy the interface.
var (
	_ driven.Transliterator = (*Transliterator)(nil)
	_ driven.Transliterator = Noop{}
)

// Transliterator converts Han characters to their lazy pinyin reading,
// one token per character, heteronyms ignored. Runs of non-Han characters
// produce no tokens, so plain ASCII input yields nil.
type Transliterator struct {
	args gopinyin.Args
}

// New returns the lazy pinyin transliterator.
func New() *Transliterator {
	return &Transliterator{args: gopinyin.NewArgs()}
}

// Transliterate returns the pinyin tokens of text, in text order.
func (t *Transliterator) Transliterate(text string) []string {
	tokens := gopinyin.LazyPinyin(text, t.args)
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Noop is the stub used when transliteration is disabled. It never
// produces tokens, so matching falls back to the literal candidate text.
type Noop struct{}

// Transliterate returns nil for any input.
func (Noop) Transliterate(string) []string { return nil }
