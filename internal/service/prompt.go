package service

import (
	"encoding/json"
	"fmt"

	"github.com/longevity-index-server/internal/domain"
	"github.com/longevity-index-server/internal/reference"
)

// BuildLongevityPrompt assembles the instruction text for a biological-age
// analysis. Pure string construction; optional fields render as "not provided".
func BuildLongevityPrompt(profile *domain.BiomarkerProfile, deviations []string, papers []string) string {
	return fmt.Sprintf(`You are a longevity medicine AI agent specializing in biological age assessment.

Patient Profile:
- Chronological Age: %d
- Sex: %s
- Biomarkers: %s
- Lifestyle: %s
- Biomarker Deviations from Optimal: %s
- Reference Ranges: %s
- Recent Research: %s

Provide a comprehensive longevity analysis:
1. Estimated biological age (based on biomarker patterns)
2. Longevity score 0-100 (100 = exceptional)
3. Top 3 risk factors
4. Top 3 interventions to improve healthspan
5. Estimated healthspan gain from interventions (years)
6. 2-3 sentence summary

Respond as JSON:
{
  "biological_age": 0.0,
  "longevity_score": 0.0,
  "top_risk_factors": ["factor1"],
  "top_interventions": ["intervention1"],
  "estimated_healthspan_gain_years": 0.0,
  "summary": "text"
}`,
		*profile.Age,
		profile.Sex,
		jsonOrEmpty(profile.Biomarkers),
		optionalMap(profile.Lifestyle),
		jsonOrEmpty(deviations),
		jsonOrEmpty(reference.BiomarkerRanges()),
		jsonOrEmpty(papers),
	)
}

// BuildInterventionPrompt assembles the instruction text for a
// single-intervention analysis.
func BuildInterventionPrompt(query *domain.InterventionQuery, papers []string) string {
	return fmt.Sprintf(`You are a longevity research AI agent analyzing interventions.

Intervention: %s
Patient Age: %d
Current Biomarkers: %s
PubMed References: %s

Analyze this longevity intervention as JSON:
{"evidence_level": "strong/moderate/weak/experimental", "expected_lifespan_impact_years": 0.0, "expected_healthspan_impact_years": 0.0, "mechanisms": ["mechanism1"], "side_effects": ["effect1"], "recommended_protocol": "dosage and timing", "pubmed_references": %s}`,
		query.Intervention,
		*query.Age,
		optionalFloatMap(query.CurrentBiomarkers),
		jsonOrEmpty(papers),
		jsonOrEmpty(papers),
	)
}

// jsonOrEmpty renders v as compact JSON. json.Marshal sorts map keys, which
// keeps the prompt text deterministic for a given input.
func jsonOrEmpty(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	if string(b) == "null" {
		return "[]"
	}
	return string(b)
}

func optionalMap(m map[string]string) string {
	if len(m) == 0 {
		return "not provided"
	}
	return jsonOrEmpty(m)
}

func optionalFloatMap(m map[string]float64) string {
	if len(m) == 0 {
		return "not provided"
	}
	return jsonOrEmpty(m)
}
