package confusion

import (
	"log"
	"os"

	"github.com/langdrift/backend/internal/langid"
)

// Thresholds of the two-signal fusion. Both are behavioral contracts from
// the scoring policy, not derived quantities; do not retune them casually.
const (
	// minPredictorConfidence is the floor below which the statistical vote
	// is discarded as unknown.
	minPredictorConfidence = 0.3
	// scriptOverrideRatio is the character-ratio majority above which the
	// script signal overrides the statistical vote. Short and code-mixed
	// lines confuse statistical language ID; a script majority is cheaper
	// and stronger.
	scriptOverrideRatio = 0.5
)

// LanguageUnknown is the sentinel detection result.
const LanguageUnknown = "unknown"

// Config configures a Calculator. Zero values select the defaults: the
// shared lingua predictor and the WORDS_PATH / WORDS_URL environment.
type Config struct {
	// WordsPath is the English word list file, one word per line.
	WordsPath string
	// WordsURL, when set, is fetched to WordsPath if the file is missing.
	WordsURL string
	// Predictor overrides the statistical language predictor.
	Predictor langid.Predictor
}

// Calculator scores language confusion in model responses. Construct once
// and reuse: the lexicon is loaded at construction and the predictor and
// segmenter handles are shared process-wide.
type Calculator struct {
	predictor langid.Predictor
	lexicon   *Lexicon
}

func NewCalculator(cfg Config) *Calculator {
	if cfg.Predictor == nil {
		cfg.Predictor = langid.Default()
	}
	if cfg.WordsPath == "" {
		cfg.WordsPath = os.Getenv("WORDS_PATH")
		if cfg.WordsURL == "" {
			cfg.WordsURL = os.Getenv("WORDS_URL")
		}
	}

	return &Calculator{
		predictor: cfg.Predictor,
		lexicon:   LoadLexicon(cfg.WordsPath, cfg.WordsURL),
	}
}

// DetectLanguage returns the most likely language code of text, or
// "unknown". The statistical vote is kept only above the confidence floor;
// a character-script majority above the override ratio takes precedence
// over it. Predictor failures degrade the call to "unknown" and never
// propagate.
func (c *Calculator) DetectLanguage(text string) string {
	label, conf, err := c.predictor.Predict(text)
	if err != nil {
		log.Printf("WARN: language prediction failed: %v", err)
		return LanguageUnknown
	}
	if conf <= minPredictorConfidence {
		label = LanguageUnknown
	}

	scores := CharacterScores(text)
	if winner, ratio, ok := maxCharacterScore(scores, label); ok && ratio > scriptOverrideRatio {
		return winner
	}
	return label
}
