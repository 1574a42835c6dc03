package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/longevity-index-server/internal/domain"
)

// literatureQueryLongevity is the fixed query used to enrich every
// longevity analysis prompt.
const literatureQueryLongevity = "biomarker biological age"

// AnalysisService runs the longevity and intervention analysis pipelines:
// deviation detection, literature enrichment, prompt assembly, one model
// completion call, and reply normalization.
type AnalysisService struct {
	logger      *logrus.Logger
	completions domain.CompletionClient
	literature  domain.LiteratureSearcher

	longevityMaxTokens    int64
	interventionMaxTokens int64
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	logger *logrus.Logger,
	completions domain.CompletionClient,
	literature domain.LiteratureSearcher,
	cfg *domain.AnthropicConfig,
) *AnalysisService {
	return &AnalysisService{
		logger:                logger,
		completions:           completions,
		literature:            literature,
		longevityMaxTokens:    cfg.LongevityMaxTokens,
		interventionMaxTokens: cfg.InterventionMaxTokens,
	}
}

// AnalyzeLongevity performs the complete biological-age analysis workflow.
// A completion failure propagates; a successful but unparsable reply
// degrades to the normalizer's deterministic fallback.
func (s *AnalysisService) AnalyzeLongevity(ctx context.Context, profile *domain.BiomarkerProfile) (*domain.LongevityScore, error) {
	deviations := AnalyzeDeviations(profile.Biomarkers)
	papers := s.literature.Search(ctx, literatureQueryLongevity)

	s.logger.WithFields(logrus.Fields{
		"age":        *profile.Age,
		"biomarkers": len(profile.Biomarkers),
		"deviations": len(deviations),
		"papers":     len(papers),
	}).Info("Starting longevity analysis")

	prompt := BuildLongevityPrompt(profile, deviations, papers)

	raw, err := s.completions.Complete(ctx, prompt, s.longevityMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("completion call failed: %w", err)
	}

	result := NormalizeLongevityReply(raw, *profile.Age, deviations)

	s.logger.WithFields(logrus.Fields{
		"biological_age":  result.BiologicalAge,
		"longevity_score": result.LongevityScore,
	}).Info("Longevity analysis completed")

	return result, nil
}

// AnalyzeIntervention performs the single-intervention analysis workflow.
func (s *AnalysisService) AnalyzeIntervention(ctx context.Context, query *domain.InterventionQuery) (*domain.InterventionAnalysis, error) {
	papers := s.literature.Search(ctx, query.Intervention)

	s.logger.WithFields(logrus.Fields{
		"intervention": query.Intervention,
		"age":          *query.Age,
		"papers":       len(papers),
	}).Info("Starting intervention analysis")

	prompt := BuildInterventionPrompt(query, papers)

	raw, err := s.completions.Complete(ctx, prompt, s.interventionMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("completion call failed: %w", err)
	}

	result := NormalizeInterventionReply(raw, query.Intervention, papers)

	s.logger.WithField("evidence_level", result.EvidenceLevel).Info("Intervention analysis completed")

	return result, nil
}
