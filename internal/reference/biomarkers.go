// Package reference holds the static biomarker and intervention tables.
// The tables are defined at process start and never mutated.
package reference

// BiomarkerRange describes the optimal range for a single biomarker
type BiomarkerRange struct {
	Optimal [2]float64 `json:"optimal"`
	Unit    string     `json:"unit"`
	Name    string     `json:"name"`
}

// Low returns the lower bound of the optimal range
func (r BiomarkerRange) Low() float64 { return r.Optimal[0] }

// High returns the upper bound of the optimal range
func (r BiomarkerRange) High() float64 { return r.Optimal[1] }

var biomarkerRanges = map[string]BiomarkerRange{
	"hba1c":           {Optimal: [2]float64{4.5, 5.2}, Unit: "%", Name: "HbA1c"},
	"crp":             {Optimal: [2]float64{0, 1.0}, Unit: "mg/L", Name: "C-Reactive Protein"},
	"igf1":            {Optimal: [2]float64{100, 200}, Unit: "ng/mL", Name: "IGF-1"},
	"testosterone":    {Optimal: [2]float64{400, 700}, Unit: "ng/dL", Name: "Testosterone (male)"},
	"vitamin_d":       {Optimal: [2]float64{40, 80}, Unit: "ng/mL", Name: "Vitamin D"},
	"homocysteine":    {Optimal: [2]float64{0, 9}, Unit: "umol/L", Name: "Homocysteine"},
	"triglycerides":   {Optimal: [2]float64{0, 100}, Unit: "mg/dL", Name: "Triglycerides"},
	"hdl":             {Optimal: [2]float64{60, 100}, Unit: "mg/dL", Name: "HDL Cholesterol"},
	"fasting_glucose": {Optimal: [2]float64{70, 90}, Unit: "mg/dL", Name: "Fasting Glucose"},
	"telomere_length": {Optimal: [2]float64{7, 9}, Unit: "kb", Name: "Telomere Length"},
}

var longevityInterventions = []string{
	"caloric restriction", "time-restricted eating", "metformin", "rapamycin",
	"NAD+ precursors", "senolytics", "exercise", "sleep optimization",
	"cold exposure", "heat therapy", "omega-3", "resveratrol",
}

// LookupBiomarker returns the range for a biomarker identifier
func LookupBiomarker(id string) (BiomarkerRange, bool) {
	r, ok := biomarkerRanges[id]
	return r, ok
}

// BiomarkerRanges returns a copy of the full biomarker reference table
func BiomarkerRanges() map[string]BiomarkerRange {
	out := make(map[string]BiomarkerRange, len(biomarkerRanges))
	for id, r := range biomarkerRanges {
		out[id] = r
	}
	return out
}

// Interventions returns a copy of the intervention list in its defined order
func Interventions() []string {
	out := make([]string, len(longevityInterventions))
	copy(out, longevityInterventions)
	return out
}

// TopInterventions returns the first n interventions from the static list
func TopInterventions(n int) []string {
	if n > len(longevityInterventions) {
		n = len(longevityInterventions)
	}
	out := make([]string, n)
	copy(out, longevityInterventions[:n])
	return out
}
