package models

import (
	"time"

	"github.com/langdrift/backend/internal/confusion"
)

// Evaluation is one persisted scoring run: a response text, the language it
// was expected to be in, and everything the scoring engine derived from it.
type Evaluation struct {
	ID                  int64     `json:"id"`
	ExpectedLanguage    string    `json:"expected_language"`
	ResponseText        string    `json:"response_text"`
	LineAccuracy        float64   `json:"line_accuracy"`
	LinePassRate        float64   `json:"line_pass_rate"`
	WordPassRate        *float64  `json:"word_pass_rate"`
	LanguageConfidence  float64   `json:"language_confidence"`
	TotalLines          int       `json:"total_lines"`
	LinesWithErrors     int       `json:"lines_with_errors"`
	LinesWithWordErrors int       `json:"lines_with_word_errors"`
	WeightedScore       float64   `json:"weighted_score"`
	SimpleScore         float64   `json:"simple_score"`
	MaxScore            float64   `json:"max_score"`
	ProbeID             *int64    `json:"probe_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// ScoreRequest is the stateless scoring input.
type ScoreRequest struct {
	Response         string `json:"response"`
	ExpectedLanguage string `json:"expected_language"`
}

// ScoreResponse pairs the metrics with the three comprehensive scores.
type ScoreResponse struct {
	Metrics       confusion.Metrics `json:"metrics"`
	WeightedScore float64           `json:"weighted_score"`
	SimpleScore   float64           `json:"simple_score"`
	MaxScore      float64           `json:"max_score"`
}

// CreateEvaluationRequest scores a response and persists the result.
type CreateEvaluationRequest struct {
	Response         string `json:"response"`
	ExpectedLanguage string `json:"expected_language"`
}

// ProbeRequest asks the probe harness to sample a model in a target
// language and score each sample.
type ProbeRequest struct {
	Prompt           string `json:"prompt"`
	ExpectedLanguage string `json:"expected_language"`
	Samples          int    `json:"samples"`
}

// Probe is a persisted probe run and its aggregate outcome.
type Probe struct {
	ID                int64        `json:"id"`
	Prompt            string       `json:"prompt"`
	ExpectedLanguage  string       `json:"expected_language"`
	ModelUsed         string       `json:"model_used"`
	Samples           int          `json:"samples"`
	MeanWeightedScore float64      `json:"mean_weighted_score"`
	Evaluations       []Evaluation `json:"evaluations,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}
