package confusion

import (
	"strings"
	"unicode"
)

// Evaluation harnesses append the next prompt after this marker; anything
// from here on is not model output.
const promptMarker = "\nQ:"

const (
	emDash      = '—'
	arabicComma = '،'
)

// Normalize truncates text at the first prompt marker, trims surrounding
// whitespace and strips punctuation. The em-dash becomes a space so the
// words it joined stay separate tokens; every other Unicode-punctuation
// rune and the Arabic comma are deleted outright. Idempotent.
func Normalize(text string) string {
	if i := strings.Index(text, promptMarker); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == emDash:
			b.WriteRune(' ')
		case r == arabicComma || unicode.IsPunct(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
