// Package confusion scores how far a generated response drifts out of its
// expected language. It combines a statistical language predictor with a
// character-script heuristic, aggregates per-line judgments into pass-rate
// metrics, and fuses those into single confusion scores.
package confusion

import "unicode"

// Languages maps every supported language code to its display name.
// The set is closed: any other code is invalid input.
var Languages = map[string]string{
	"ko": "Korean",
	"en": "English",
	"zh": "Chinese",
	"ja": "Japanese",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
}

// languageOrder is the deterministic tie-break order for character-ratio
// maxima. Latin-script patterns overlap on a-z, so ties are common.
var languageOrder = []string{"ko", "en", "zh", "ja", "es", "fr", "de", "it", "pt"}

// cjkClass marks the languages for which English-loanword detection and
// word_pass_rate apply.
var cjkClass = map[string]bool{"ko": true, "zh": true, "ja": true}

// IsSupported reports whether code is in the language registry.
func IsSupported(code string) bool {
	_, ok := Languages[code]
	return ok
}

// IsCJKClass reports whether code is a CJK-class language (ko, zh, ja).
func IsCJKClass(code string) bool {
	return cjkClass[code]
}

// charPattern is the character-membership test for one language's script.
// Latin-script languages share the ASCII letter base and differ only in
// their accented-letter sets.
type charPattern struct {
	ascii  bool
	tables []*unicode.RangeTable
	extra  string
}

func (p charPattern) contains(r rune) bool {
	if p.ascii && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
		return true
	}
	for _, t := range p.tables {
		if unicode.In(r, t) {
			return true
		}
	}
	for _, e := range p.extra {
		if r == e {
			return true
		}
	}
	return false
}

var patterns = map[string]charPattern{
	"ko": {tables: []*unicode.RangeTable{unicode.Hangul}},
	"zh": {tables: []*unicode.RangeTable{unicode.Han}},
	"ja": {tables: []*unicode.RangeTable{unicode.Hiragana, unicode.Katakana, unicode.Han}},
	"en": {ascii: true},
	"es": {ascii: true, extra: "áéíóúüñÁÉÍÓÚÜÑ"},
	"fr": {ascii: true, extra: "àâäæçéèêëîïôœùûüÿÀÂÄÆÇÉÈÊËÎÏÔŒÙÛÜŸ"},
	"de": {ascii: true, extra: "äöüßÄÖÜ"},
	"it": {ascii: true, extra: "àèéìíîòóùúÀÈÉÌÍÎÒÓÙÚ"},
	"pt": {ascii: true, extra: "áâãàçéêíóôõúÁÂÃÀÇÉÊÍÓÔÕÚ"},
}
