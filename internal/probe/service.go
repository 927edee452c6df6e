package probe

import (
	"context"
	"fmt"
	"log"

	"github.com/langdrift/backend/internal/confusion"
	"github.com/langdrift/backend/internal/evaluations"
	"github.com/langdrift/backend/internal/models"
)

const (
	defaultSamples = 3
	maxSamples     = 10
)

type Service struct {
	llm   LLMClient
	model string
	evals *evaluations.Service
	store *evaluations.Store
}

func NewService(evals *evaluations.Service, store *evaluations.Store) *Service {
	llm, model := NewClient()
	return &Service{llm: llm, model: model, evals: evals, store: store}
}

// Run samples the model in the target language and scores every sample.
// Individual sample failures are logged and skipped; the probe fails only
// when no sample could be generated at all.
func (s *Service) Run(ctx context.Context, req models.ProbeRequest) (*models.Probe, error) {
	if !confusion.IsSupported(req.ExpectedLanguage) {
		return nil, &confusion.InvalidLanguageError{Code: req.ExpectedLanguage}
	}
	samples := req.Samples
	if samples <= 0 {
		samples = defaultSamples
	}
	if samples > maxSamples {
		samples = maxSamples
	}

	probe := &models.Probe{
		Prompt:           req.Prompt,
		ExpectedLanguage: req.ExpectedLanguage,
		ModelUsed:        s.model,
	}
	if err := s.store.CreateProbe(probe); err != nil {
		return nil, err
	}

	systemPrompt := SystemPrompt(req.ExpectedLanguage)
	userPrompt := BuildUserPrompt(req.Prompt, req.ExpectedLanguage)

	var totalWeighted float64
	for i := 0; i < samples; i++ {
		resp, err := s.llm.Generate(ctx, systemPrompt, userPrompt)
		if err != nil {
			log.Printf("WARN: probe sample %d failed: %v", i+1, err)
			continue
		}

		eval, err := s.evals.Evaluate(resp.Content, req.ExpectedLanguage, &probe.ID)
		if err != nil {
			log.Printf("WARN: scoring probe sample %d failed: %v", i+1, err)
			continue
		}

		probe.Evaluations = append(probe.Evaluations, *eval)
		totalWeighted += eval.WeightedScore
	}

	if len(probe.Evaluations) == 0 {
		return nil, fmt.Errorf("probe produced no scorable samples")
	}

	probe.Samples = len(probe.Evaluations)
	probe.MeanWeightedScore = totalWeighted / float64(probe.Samples)
	if err := s.store.CompleteProbe(probe.ID, probe.Samples, probe.MeanWeightedScore); err != nil {
		return nil, err
	}
	return probe, nil
}
