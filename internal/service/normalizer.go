package service

import (
	"encoding/json"
	"strings"

	"github.com/longevity-index-server/internal/domain"
	"github.com/longevity-index-server/internal/reference"
)

// The model's reply is untrusted free text that is often, but not always,
// valid JSON wrapped in prose. The normalizers below extract the first "{"
// to the last "}" and decode leniently: unknown fields are ignored and
// missing fields get documented defaults. When no such span exists or it
// fails to decode, a deterministic fallback record built from locally
// available data is returned instead, so a request never fails solely
// because the model's formatting was imperfect.

// longevityReply mirrors the requested output schema with pointer fields so
// absent keys can be told apart from zero values.
type longevityReply struct {
	BiologicalAge                *float64 `json:"biological_age"`
	LongevityScore               *float64 `json:"longevity_score"`
	TopRiskFactors               []string `json:"top_risk_factors"`
	TopInterventions             []string `json:"top_interventions"`
	EstimatedHealthspanGainYears *float64 `json:"estimated_healthspan_gain_years"`
	Summary                      *string  `json:"summary"`
}

type interventionReply struct {
	EvidenceLevel                 *string  `json:"evidence_level"`
	ExpectedLifespanImpactYears   *float64 `json:"expected_lifespan_impact_years"`
	ExpectedHealthspanImpactYears *float64 `json:"expected_healthspan_impact_years"`
	Mechanisms                    []string `json:"mechanisms"`
	SideEffects                   []string `json:"side_effects"`
	RecommendedProtocol           *string  `json:"recommended_protocol"`
	PubMedReferences              []string `json:"pubmed_references"`
}

// NormalizeLongevityReply shapes the raw model reply into a LongevityScore.
// On an unparsable reply it degrades to the deterministic fallback built from
// the request's chronological age, the deviation findings, and the static
// intervention list.
func NormalizeLongevityReply(raw string, age int, deviations []string) *domain.LongevityScore {
	body, ok := extractObject(raw)
	if ok {
		var reply longevityReply
		if err := json.Unmarshal([]byte(body), &reply); err == nil {
			return &domain.LongevityScore{
				ChronologicalAge:             age,
				BiologicalAge:                floatOr(reply.BiologicalAge, float64(age)),
				LongevityScore:               floatOr(reply.LongevityScore, 50.0),
				TopRiskFactors:               listOrEmpty(reply.TopRiskFactors),
				TopInterventions:             listOrEmpty(reply.TopInterventions),
				EstimatedHealthspanGainYears: floatOr(reply.EstimatedHealthspanGainYears, 0.0),
				Summary:                      stringOr(reply.Summary, ""),
			}
		}
	}

	return &domain.LongevityScore{
		ChronologicalAge:             age,
		BiologicalAge:                float64(age),
		LongevityScore:               50.0,
		TopRiskFactors:               firstN(deviations, 3),
		TopInterventions:             reference.TopInterventions(3),
		EstimatedHealthspanGainYears: 2.0,
		Summary:                      raw,
	}
}

// NormalizeInterventionReply shapes the raw model reply into an
// InterventionAnalysis. The fallback record carries the raw text as the
// recommended protocol and whatever references the literature search found.
func NormalizeInterventionReply(raw, intervention string, papers []string) *domain.InterventionAnalysis {
	body, ok := extractObject(raw)
	if ok {
		var reply interventionReply
		if err := json.Unmarshal([]byte(body), &reply); err == nil {
			return &domain.InterventionAnalysis{
				Intervention:                  intervention,
				EvidenceLevel:                 stringOr(reply.EvidenceLevel, ""),
				ExpectedLifespanImpactYears:   floatOr(reply.ExpectedLifespanImpactYears, 0.0),
				ExpectedHealthspanImpactYears: floatOr(reply.ExpectedHealthspanImpactYears, 0.0),
				Mechanisms:                    listOrEmpty(reply.Mechanisms),
				SideEffects:                   listOrEmpty(reply.SideEffects),
				RecommendedProtocol:           stringOr(reply.RecommendedProtocol, ""),
				PubMedReferences:              listOrEmpty(reply.PubMedReferences),
			}
		}
	}

	return &domain.InterventionAnalysis{
		Intervention:                  intervention,
		EvidenceLevel:                 domain.EvidenceModerate,
		ExpectedLifespanImpactYears:   1.0,
		ExpectedHealthspanImpactYears: 2.0,
		Mechanisms:                    []string{},
		SideEffects:                   []string{},
		RecommendedProtocol:           raw,
		PubMedReferences:              listOrEmpty(papers),
	}
}

// extractObject returns the substring from the first "{" to the last "}"
// inclusive. ok is false when no such span exists.
func extractObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func listOrEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func firstN(v []string, n int) []string {
	if len(v) < n {
		n = len(v)
	}
	out := make([]string, n)
	copy(out, v[:n])
	return out
}
