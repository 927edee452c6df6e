package confusion

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// minLineTokens is the minimum token count for a line to be judged; shorter
// lines are too noisy for reliable language identification.
const minLineTokens = 3

// minAnalysisRunes is the minimum trimmed length for a line to appear in
// the per-line analysis breakdown.
const minAnalysisRunes = 5

// InvalidLanguageError reports an expected-language code outside the
// registry. Retrying without correcting the input will not help.
type InvalidLanguageError struct {
	Code string
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("unsupported language code %q", e.Code)
}

// Metrics is the aggregate outcome of scoring one response. All fields are
// derived and immutable once computed.
//
// WordPassRate is nil for non-CJK-class languages: the loanword check is
// not evaluated there, and nil must never be read as a perfect or failing
// score.
type Metrics struct {
	LineAccuracy        float64  `json:"line_accuracy"`
	LinePassRate        float64  `json:"line_pass_rate"`
	WordPassRate        *float64 `json:"word_pass_rate"`
	TotalLines          int      `json:"total_lines"`
	LinesWithErrors     int      `json:"lines_with_errors"`
	LinesWithWordErrors int      `json:"lines_with_word_errors"`
	LanguageConfidence  float64  `json:"language_confidence"`
}

// LineResult is one line of the detailed analysis breakdown.
type LineResult struct {
	LineNumber        int      `json:"line_number"`
	Content           string   `json:"content"`
	DetectedLanguage  string   `json:"detected_language"`
	IsCorrectLanguage bool     `json:"is_correct_language"`
	EnglishWordsFound []string `json:"english_words_found"`
	HasEnglishWords   bool     `json:"has_english_words"`
}

// Summary condenses an analysis into the headline numbers.
type Summary struct {
	ExpectedLanguage   string  `json:"expected_language"`
	LanguageName       string  `json:"language_name"`
	TotalLinesAnalyzed int     `json:"total_lines_analyzed"`
	ConfusionScore     float64 `json:"language_confusion_score"`
	OverallAccuracy    float64 `json:"overall_accuracy"`
	WeightedScore      float64 `json:"weighted_score"`
	SimpleScore        float64 `json:"simple_score"`
	MaxScore           float64 `json:"max_score"`
}

// Analysis is the rich entry point's result: metrics plus a per-line
// breakdown and a summary block.
type Analysis struct {
	Metrics Metrics      `json:"metrics"`
	Lines   []LineResult `json:"line_analysis"`
	Summary Summary      `json:"summary"`
}

// ComputeMetrics scores response against expectedLanguage. It returns an
// *InvalidLanguageError when the code is outside the registry.
//
// Lines with fewer than minLineTokens tokens are discarded; when nothing
// survives, the result is the optimistic default — absence of evaluable
// content is not penalized.
func (c *Calculator) ComputeMetrics(response, expectedLanguage string) (*Metrics, error) {
	if !IsSupported(expectedLanguage) {
		return nil, &InvalidLanguageError{Code: expectedLanguage}
	}

	lines := strings.Split(Normalize(response), "\n")

	var valid []string
	for _, line := range lines {
		if len(Tokenize(line, expectedLanguage)) >= minLineTokens {
			valid = append(valid, line)
		}
	}

	if len(valid) == 0 {
		m := &Metrics{
			LineAccuracy:       1.0,
			LinePassRate:       1.0,
			LanguageConfidence: 1.0,
		}
		if IsCJKClass(expectedLanguage) {
			m.WordPassRate = floatPtr(1.0)
		}
		return m, nil
	}

	var (
		correct    int
		errorLines int
		wordErrors int
		confidence float64
	)
	for _, line := range valid {
		detected := c.DetectLanguage(line)
		lineCorrect := detected == expectedLanguage

		if lineCorrect {
			correct++
			if IsCJKClass(expectedLanguage) && len(c.englishWords(line, expectedLanguage)) > 0 {
				wordErrors++
			}
		} else {
			errorLines++
		}

		confidence += CharacterScores(line)[expectedLanguage]
	}

	total := len(valid)
	m := &Metrics{
		LineAccuracy:        float64(correct) / float64(max(1, total)),
		LinePassRate:        1 - float64(errorLines)/float64(max(1, total)),
		TotalLines:          total,
		LinesWithErrors:     errorLines,
		LinesWithWordErrors: wordErrors,
		LanguageConfidence:  confidence / float64(max(1, total)),
	}
	if IsCJKClass(expectedLanguage) {
		m.WordPassRate = floatPtr(1 - float64(wordErrors)/float64(max(1, total-errorLines)))
	}
	return m, nil
}

// Analyze scores response and additionally returns a per-line breakdown and
// a summary with the three comprehensive confusion scores.
func (c *Calculator) Analyze(response, expectedLanguage string) (*Analysis, error) {
	metrics, err := c.ComputeMetrics(response, expectedLanguage)
	if err != nil {
		return nil, err
	}

	var results []LineResult
	for i, line := range strings.Split(Normalize(response), "\n") {
		if utf8.RuneCountInString(strings.TrimSpace(line)) < minAnalysisRunes {
			continue
		}
		detected := c.DetectLanguage(line)
		english := c.englishWords(line, expectedLanguage)
		results = append(results, LineResult{
			LineNumber:        i + 1,
			Content:           line,
			DetectedLanguage:  detected,
			IsCorrectLanguage: detected == expectedLanguage,
			EnglishWordsFound: english,
			HasEnglishWords:   len(english) > 0,
		})
	}

	return &Analysis{
		Metrics: *metrics,
		Lines:   results,
		Summary: Summary{
			ExpectedLanguage:   expectedLanguage,
			LanguageName:       Languages[expectedLanguage],
			TotalLinesAnalyzed: metrics.TotalLines,
			ConfusionScore:     1 - metrics.LinePassRate,
			OverallAccuracy:    metrics.LineAccuracy,
			WeightedScore:      WeightedScore(metrics),
			SimpleScore:        SimpleScore(metrics),
			MaxScore:           MaxScore(metrics),
		},
	}, nil
}

// loanwordTokens picks the token stream scanned for English loanwords.
// Korean is whitespace-delimited, so the fields are the words; Chinese and
// Japanese have no spaces, so the segmenter output is needed to split a
// Latin run glued to CJK text into its own token.
func loanwordTokens(line, lang string) []string {
	if lang == "ko" {
		return strings.Fields(line)
	}
	return Tokenize(line, lang)
}

func (c *Calculator) englishWords(line, lang string) []string {
	return c.lexicon.Matches(loanwordTokens(line, lang))
}

func floatPtr(v float64) *float64 { return &v }
