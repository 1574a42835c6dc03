package domain

// Request/Response Models

// BiomarkerProfile represents an incoming longevity analysis request.
// Age is a pointer so an absent key is rejected rather than read as 0.
type BiomarkerProfile struct {
	Age        *int               `json:"age" binding:"required,gte=0"`
	Sex        string             `json:"sex" binding:"required"`
	Biomarkers map[string]float64 `json:"biomarkers" binding:"required"`
	Lifestyle  map[string]string  `json:"lifestyle,omitempty"`
}

// LongevityScore represents the typed result of a longevity analysis
type LongevityScore struct {
	BiologicalAge                float64  `json:"biological_age"`
	ChronologicalAge             int      `json:"chronological_age"`
	LongevityScore               float64  `json:"longevity_score"`
	TopRiskFactors               []string `json:"top_risk_factors"`
	TopInterventions             []string `json:"top_interventions"`
	EstimatedHealthspanGainYears float64  `json:"estimated_healthspan_gain_years"`
	Summary                      string   `json:"summary"`
}

// InterventionQuery represents an incoming intervention analysis request
type InterventionQuery struct {
	Intervention      string             `json:"intervention" binding:"required"`
	Age               *int               `json:"age" binding:"required,gte=0"`
	CurrentBiomarkers map[string]float64 `json:"current_biomarkers,omitempty"`
}

// InterventionAnalysis represents the typed result of an intervention analysis
type InterventionAnalysis struct {
	Intervention                  string   `json:"intervention"`
	EvidenceLevel                 string   `json:"evidence_level"`
	ExpectedLifespanImpactYears   float64  `json:"expected_lifespan_impact_years"`
	ExpectedHealthspanImpactYears float64  `json:"expected_healthspan_impact_years"`
	Mechanisms                    []string `json:"mechanisms"`
	SideEffects                   []string `json:"side_effects"`
	RecommendedProtocol           string   `json:"recommended_protocol"`
	PubMedReferences              []string `json:"pubmed_references"`
}

// EvidenceLevel conventions reported by the model. Not enforced on decode;
// the normalizer passes whatever label the reply carries.
const (
	EvidenceStrong       = "strong"
	EvidenceModerate     = "moderate"
	EvidenceWeak         = "weak"
	EvidenceExperimental = "experimental"
)
