package driven

// Transliterator converts non-Latin script into latin phonetic tokens so a
// query typed in latin script can match a candidate via its reading.
// Implementations return no tokens for input they cannot widen; capability
// absence is modelled by a no-op implementation, never by an error.
type Transliterator interface {
	// Transliterate returns the latin phonetic tokens of text, in order.
	// Plain latin input yields nil.
	Transliterate(text string) []string
}
