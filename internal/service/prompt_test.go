package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/longevity-index-server/internal/domain"
)

func TestBuildLongevityPrompt(t *testing.T) {
	profile := &domain.BiomarkerProfile{
		Age:        intPtr(45),
		Sex:        "male",
		Biomarkers: map[string]float64{"hba1c": 6.0},
	}
	deviations := []string{"HbA1c: 6.0 % (above optimal 4.5-5.2)"}
	papers := []string{"https://pubmed.ncbi.nlm.nih.gov/123/"}

	prompt := BuildLongevityPrompt(profile, deviations, papers)

	assert.Contains(t, prompt, "longevity medicine AI agent")
	assert.Contains(t, prompt, "Chronological Age: 45")
	assert.Contains(t, prompt, "Sex: male")
	assert.Contains(t, prompt, `"hba1c":6`)
	assert.Contains(t, prompt, "Lifestyle: not provided")
	assert.Contains(t, prompt, "HbA1c: 6.0 % (above optimal 4.5-5.2)")
	assert.Contains(t, prompt, "https://pubmed.ncbi.nlm.nih.gov/123/")
	assert.Contains(t, prompt, `"biological_age": 0.0`)
	// Reference ranges are embedded for the model's benefit.
	assert.Contains(t, prompt, "Telomere Length")
}

func TestBuildLongevityPrompt_WithLifestyle(t *testing.T) {
	profile := &domain.BiomarkerProfile{
		Age:        intPtr(30),
		Sex:        "female",
		Biomarkers: map[string]float64{},
		Lifestyle:  map[string]string{"smoking": "never"},
	}

	prompt := BuildLongevityPrompt(profile, nil, nil)

	assert.Contains(t, prompt, `"smoking":"never"`)
	assert.NotContains(t, prompt, "Lifestyle: not provided")
	assert.Contains(t, prompt, "Biomarker Deviations from Optimal: []")
	assert.Contains(t, prompt, "Recent Research: []")
}

func TestBuildLongevityPrompt_Deterministic(t *testing.T) {
	profile := &domain.BiomarkerProfile{
		Age: intPtr(45),
		Sex: "male",
		Biomarkers: map[string]float64{
			"hba1c": 6.0, "crp": 2.0, "hdl": 40, "vitamin_d": 25,
		},
	}

	first := BuildLongevityPrompt(profile, nil, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildLongevityPrompt(profile, nil, nil))
	}
}

func TestBuildInterventionPrompt(t *testing.T) {
	query := &domain.InterventionQuery{
		Intervention: "rapamycin",
		Age:          intPtr(52),
	}
	papers := []string{"https://pubmed.ncbi.nlm.nih.gov/9/"}

	prompt := BuildInterventionPrompt(query, papers)

	assert.Contains(t, prompt, "longevity research AI agent")
	assert.Contains(t, prompt, "Intervention: rapamycin")
	assert.Contains(t, prompt, "Patient Age: 52")
	assert.Contains(t, prompt, "Current Biomarkers: not provided")
	assert.Contains(t, prompt, `"evidence_level": "strong/moderate/weak/experimental"`)
	assert.Contains(t, prompt, `"pubmed_references": ["https://pubmed.ncbi.nlm.nih.gov/9/"]`)
}

func TestBuildInterventionPrompt_WithBiomarkers(t *testing.T) {
	query := &domain.InterventionQuery{
		Intervention:      "metformin",
		Age:               intPtr(60),
		CurrentBiomarkers: map[string]float64{"fasting_glucose": 105},
	}

	prompt := BuildInterventionPrompt(query, nil)

	assert.Contains(t, prompt, `"fasting_glucose":105`)
	assert.Contains(t, prompt, `"pubmed_references": []`)
}
