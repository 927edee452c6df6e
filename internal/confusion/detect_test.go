package confusion

import (
	"errors"
	"testing"

	"github.com/langdrift/backend/internal/langid"
)

// stubPredictor returns a fixed prediction regardless of input.
type stubPredictor struct {
	label string
	conf  float64
	err   error
}

func (s stubPredictor) Predict(string) (string, float64, error) {
	return s.label, s.conf, s.err
}

// predictorFunc adapts a function to the langid.Predictor interface.
type predictorFunc func(text string) (string, float64, error)

func (f predictorFunc) Predict(text string) (string, float64, error) {
	return f(text)
}

func newTestCalculator(p langid.Predictor, words ...string) *Calculator {
	return &Calculator{predictor: p, lexicon: newLexicon(words...)}
}

func TestDetectLanguage_StatisticalVote(t *testing.T) {
	c := newTestCalculator(stubPredictor{label: "ko", conf: 0.95})
	// Mixed-script line: no script clears the override ratio, so the
	// statistical vote stands.
	if got := c.DetectLanguage("안녕하세요 반가워요 hi yes ok"); got != "ko" {
		t.Errorf("expected ko, got %q", got)
	}
}

func TestDetectLanguage_LowConfidenceBecomesUnknown(t *testing.T) {
	c := newTestCalculator(stubPredictor{label: "en", conf: 0.3})
	// Digits carry no script signal, so nothing can override the
	// discarded vote.
	if got := c.DetectLanguage("12345 678 90"); got != LanguageUnknown {
		t.Errorf("expected unknown, got %q", got)
	}
}

func TestDetectLanguage_ScriptOverridesStatisticalVote(t *testing.T) {
	c := newTestCalculator(stubPredictor{label: "en", conf: 0.99})
	if got := c.DetectLanguage("안녕하세요 반갑습니다"); got != "ko" {
		t.Errorf("expected script override to ko, got %q", got)
	}
}

func TestDetectLanguage_TiePrefersStatisticalVote(t *testing.T) {
	c := newTestCalculator(stubPredictor{label: "es", conf: 0.9})
	// Plain ASCII ties every Latin language at the same ratio; the vote
	// breaks the tie.
	if got := c.DetectLanguage("hola como estas amigo"); got != "es" {
		t.Errorf("expected es, got %q", got)
	}
}

func TestDetectLanguage_PredictorFailureDegradesToUnknown(t *testing.T) {
	c := newTestCalculator(stubPredictor{err: errors.New("model not loaded")})
	if got := c.DetectLanguage("this would otherwise be english"); got != LanguageUnknown {
		t.Errorf("expected unknown on predictor failure, got %q", got)
	}
}
