package confusion

import (
	"errors"
	"strings"
	"testing"
)

// scriptAwarePredictor votes by dominant script, the way the statistical
// model behaves on clean single-language lines.
func scriptAwarePredictor() predictorFunc {
	return func(text string) (string, float64, error) {
		scores := CharacterScores(text)
		if scores["ko"] > 0 {
			return "ko", 0.9, nil
		}
		if _, ok := scores["en"]; ok {
			return "en", 0.9, nil
		}
		return LanguageUnknown, 0, nil
	}
}

func TestComputeMetrics_InvalidLanguage(t *testing.T) {
	c := newTestCalculator(stubPredictor{label: "en", conf: 0.9})
	_, err := c.ComputeMetrics("whatever text", "xx")
	var invalid *InvalidLanguageError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidLanguageError, got %v", err)
	}
	if invalid.Code != "xx" {
		t.Errorf("expected offending code xx, got %q", invalid.Code)
	}
}

func TestComputeMetrics_EmptyResponseDefaults(t *testing.T) {
	c := newTestCalculator(stubPredictor{label: "en", conf: 0.9})
	for code := range Languages {
		m, err := c.ComputeMetrics("", code)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", code, err)
		}
		if !almostEqual(m.LineAccuracy, 1.0) || !almostEqual(m.LinePassRate, 1.0) || !almostEqual(m.LanguageConfidence, 1.0) {
			t.Errorf("%s: expected optimistic defaults, got %+v", code, m)
		}
		if m.TotalLines != 0 || m.LinesWithErrors != 0 || m.LinesWithWordErrors != 0 {
			t.Errorf("%s: expected zero counts, got %+v", code, m)
		}
		if IsCJKClass(code) {
			if m.WordPassRate == nil || !almostEqual(*m.WordPassRate, 1.0) {
				t.Errorf("%s: expected word_pass_rate 1.0, got %v", code, m.WordPassRate)
			}
		} else if m.WordPassRate != nil {
			t.Errorf("%s: expected nil word_pass_rate, got %f", code, *m.WordPassRate)
		}
	}
}

func TestComputeMetrics_TooShortLinesFiltered(t *testing.T) {
	c := newTestCalculator(stubPredictor{label: "en", conf: 0.9})
	m, err := c.ComputeMetrics("Hi\nok then", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalLines != 0 || !almostEqual(m.LineAccuracy, 1.0) {
		t.Errorf("expected all lines filtered, got %+v", m)
	}
}

func TestComputeMetrics_EnglishResponse(t *testing.T) {
	c := newTestCalculator(scriptAwarePredictor())
	m, err := c.ComputeMetrics("Hello, how are you today? The weather is nice.", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalLines != 1 || m.LinesWithErrors != 0 {
		t.Errorf("expected one clean line, got %+v", m)
	}
	if !almostEqual(m.LineAccuracy, 1.0) || !almostEqual(m.LinePassRate, 1.0) {
		t.Errorf("expected perfect line scores, got %+v", m)
	}
	if m.WordPassRate != nil {
		t.Errorf("expected nil word_pass_rate for en, got %f", *m.WordPassRate)
	}
	if m.LanguageConfidence <= 0.5 || m.LanguageConfidence > 1.0 {
		t.Errorf("expected high en confidence, got %f", m.LanguageConfidence)
	}
}

func TestComputeMetrics_KoreanWithEnglishLoanwords(t *testing.T) {
	c := newTestCalculator(scriptAwarePredictor(), "hope", "have", "great")
	m, err := c.ComputeMetrics("안녕하세요. 오늘 날씨가 좋네요. I hope you have a great day!", "ko")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalLines != 1 {
		t.Fatalf("expected one surviving line, got %d", m.TotalLines)
	}
	if !almostEqual(m.LineAccuracy, 1.0) {
		t.Errorf("expected line classified correct, got accuracy %f", m.LineAccuracy)
	}
	if m.LinesWithWordErrors != 1 {
		t.Errorf("expected one word-error line, got %d", m.LinesWithWordErrors)
	}
	if m.WordPassRate == nil || *m.WordPassRate >= 1.0 {
		t.Errorf("expected word_pass_rate below 1.0, got %v", m.WordPassRate)
	}
}

func TestComputeMetrics_ChineseGluedLoanword(t *testing.T) {
	// Chinese has no word spaces, so an English word embedded directly in
	// Han text only becomes visible to the lexicon after segmentation.
	c := newTestCalculator(scriptAwarePredictor(), "machine")
	m, err := c.ComputeMetrics("我非常喜欢machine学习的课程", "zh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalLines != 1 {
		t.Fatalf("expected one surviving line, got %d", m.TotalLines)
	}
	if !almostEqual(m.LineAccuracy, 1.0) {
		t.Errorf("expected line classified correct, got accuracy %f", m.LineAccuracy)
	}
	if m.LinesWithWordErrors != 1 {
		t.Errorf("expected one word-error line, got %d", m.LinesWithWordErrors)
	}
	if m.WordPassRate == nil || *m.WordPassRate >= 1.0 {
		t.Errorf("expected word_pass_rate below 1.0, got %v", m.WordPassRate)
	}
}

func TestComputeMetrics_MixedLanguageLines(t *testing.T) {
	c := newTestCalculator(scriptAwarePredictor())
	response := "안녕하세요 반갑습니다 좋아요\nThis is English text here"
	m, err := c.ComputeMetrics(response, "ko")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalLines != 2 || m.LinesWithErrors != 1 {
		t.Errorf("expected 2 lines with 1 error, got %+v", m)
	}
	if !almostEqual(m.LineAccuracy, 0.5) || !almostEqual(m.LinePassRate, 0.5) {
		t.Errorf("expected 0.5 accuracy and pass rate, got %+v", m)
	}
	if m.WordPassRate == nil || !almostEqual(*m.WordPassRate, 1.0) {
		t.Errorf("expected word_pass_rate 1.0, got %v", m.WordPassRate)
	}
}

func TestComputeMetrics_BoundsHold(t *testing.T) {
	c := newTestCalculator(scriptAwarePredictor(), "hope", "great")
	responses := []string{
		"",
		"Hello, how are you today?",
		"안녕하세요 오늘 날씨가 좋네요",
		"안녕하세요 좋은 하루\nmixed English line here today",
	}
	for _, resp := range responses {
		for code := range Languages {
			m, err := c.ComputeMetrics(resp, code)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", code, err)
			}
			for name, v := range map[string]float64{
				"line_accuracy":       m.LineAccuracy,
				"line_pass_rate":      m.LinePassRate,
				"language_confidence": m.LanguageConfidence,
			} {
				if v < 0 || v > 1 {
					t.Errorf("%s out of bounds for %s on %q: %f", name, code, resp, v)
				}
			}
			if m.WordPassRate != nil && (*m.WordPassRate < 0 || *m.WordPassRate > 1) {
				t.Errorf("word_pass_rate out of bounds for %s: %f", code, *m.WordPassRate)
			}
			if IsCJKClass(code) != (m.WordPassRate != nil) {
				t.Errorf("word_pass_rate applicability wrong for %s", code)
			}
		}
	}
}

func TestAnalyze_Breakdown(t *testing.T) {
	c := newTestCalculator(scriptAwarePredictor(), "hope", "great")
	a, err := c.Analyze("안녕하세요 오늘 날씨가 좋네요 I hope you have a great day", "ko")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Lines) != 1 {
		t.Fatalf("expected one analyzed line, got %d", len(a.Lines))
	}
	line := a.Lines[0]
	if line.DetectedLanguage != "ko" || !line.IsCorrectLanguage {
		t.Errorf("expected correct ko line, got %+v", line)
	}
	if !line.HasEnglishWords || len(line.EnglishWordsFound) != 2 {
		t.Errorf("expected hope and great flagged, got %v", line.EnglishWordsFound)
	}
	if a.Summary.LanguageName != "Korean" {
		t.Errorf("expected display name Korean, got %q", a.Summary.LanguageName)
	}
	if !almostEqual(a.Summary.ConfusionScore, 1-a.Metrics.LinePassRate) {
		t.Errorf("summary confusion score inconsistent: %+v", a.Summary)
	}
	for _, s := range []float64{a.Summary.WeightedScore, a.Summary.SimpleScore, a.Summary.MaxScore} {
		if s < 0 || s > 1 {
			t.Errorf("comprehensive score out of bounds: %f", s)
		}
	}
}

func TestAnalyze_SkipsShortLines(t *testing.T) {
	c := newTestCalculator(scriptAwarePredictor())
	a, err := c.Analyze("hi\nThis line is long enough to analyze", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Lines) != 1 || !strings.HasPrefix(a.Lines[0].Content, "This line") {
		t.Errorf("expected only the long line analyzed, got %+v", a.Lines)
	}
}
