package confusion

import (
	"strings"
	"unicode/utf8"
)

// CharacterScores computes, for every supported language, the fraction of
// runes in text belonging to that language's script. Every rune counts in
// the denominator, whitespace included, so ratios from different languages
// are directly comparable. Ratios are independent and do not sum to 1:
// a Latin-script line scores on en, es, fr, de, it and pt at once.
//
// Empty or whitespace-only input yields an empty map.
func CharacterScores(text string) map[string]float64 {
	if strings.TrimSpace(text) == "" {
		return map[string]float64{}
	}

	total := utf8.RuneCountInString(text)
	counts := make(map[string]int, len(patterns))
	for _, r := range text {
		for code, p := range patterns {
			if p.contains(r) {
				counts[code]++
			}
		}
	}

	scores := make(map[string]float64, len(counts))
	for code, n := range counts {
		scores[code] = float64(n) / float64(total)
	}
	return scores
}

// maxCharacterScore returns the language with the highest ratio in scores.
// Ties are resolved by preferring hint (the statistical vote) when it is
// among the tied languages, then by registry order. Returns ok=false for an
// empty score vector.
func maxCharacterScore(scores map[string]float64, hint string) (code string, ratio float64, ok bool) {
	best := -1.0
	for _, c := range languageOrder {
		s, present := scores[c]
		if !present {
			continue
		}
		if s > best {
			best = s
			code = c
			ok = true
		}
	}
	if !ok {
		return "", 0, false
	}
	if hint != code && scores[hint] == best {
		code = hint
	}
	return code, best, true
}
