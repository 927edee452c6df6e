package evaluations

import (
	"fmt"

	"github.com/langdrift/backend/internal/confusion"
	"github.com/langdrift/backend/internal/models"
)

type Service struct {
	store *Store
	calc  *confusion.Calculator
}

func NewService(store *Store, calc *confusion.Calculator) *Service {
	return &Service{store: store, calc: calc}
}

// Score runs the calculator without persisting anything.
func (s *Service) Score(req models.ScoreRequest) (*models.ScoreResponse, error) {
	metrics, err := s.calc.ComputeMetrics(req.Response, req.ExpectedLanguage)
	if err != nil {
		return nil, err
	}
	return &models.ScoreResponse{
		Metrics:       *metrics,
		WeightedScore: confusion.WeightedScore(metrics),
		SimpleScore:   confusion.SimpleScore(metrics),
		MaxScore:      confusion.MaxScore(metrics),
	}, nil
}

// Analyze returns the per-line breakdown without persisting anything.
func (s *Service) Analyze(req models.ScoreRequest) (*confusion.Analysis, error) {
	return s.calc.Analyze(req.Response, req.ExpectedLanguage)
}

// Evaluate scores a response and persists the result. probeID links the
// evaluation to a probe run when it came from the probe harness.
func (s *Service) Evaluate(response, expectedLanguage string, probeID *int64) (*models.Evaluation, error) {
	metrics, err := s.calc.ComputeMetrics(response, expectedLanguage)
	if err != nil {
		return nil, err
	}

	e := &models.Evaluation{
		ExpectedLanguage:    expectedLanguage,
		ResponseText:        response,
		LineAccuracy:        metrics.LineAccuracy,
		LinePassRate:        metrics.LinePassRate,
		WordPassRate:        metrics.WordPassRate,
		LanguageConfidence:  metrics.LanguageConfidence,
		TotalLines:          metrics.TotalLines,
		LinesWithErrors:     metrics.LinesWithErrors,
		LinesWithWordErrors: metrics.LinesWithWordErrors,
		WeightedScore:       confusion.WeightedScore(metrics),
		SimpleScore:         confusion.SimpleScore(metrics),
		MaxScore:            confusion.MaxScore(metrics),
		ProbeID:             probeID,
	}
	if err := s.store.Insert(e); err != nil {
		return nil, fmt.Errorf("persist evaluation: %w", err)
	}
	return e, nil
}

func (s *Service) Get(id int64) (*models.Evaluation, error) {
	return s.store.Get(id)
}

func (s *Service) List(language string, limit, offset int) ([]models.Evaluation, error) {
	return s.store.List(language, limit, offset)
}
