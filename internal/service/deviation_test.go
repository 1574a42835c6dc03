package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDeviations(t *testing.T) {
	tests := []struct {
		name       string
		biomarkers map[string]float64
		want       []string
	}{
		{
			name:       "Empty input",
			biomarkers: map[string]float64{},
			want:       nil,
		},
		{
			name:       "Nil input",
			biomarkers: nil,
			want:       nil,
		},
		{
			name: "All values in range",
			biomarkers: map[string]float64{
				"hba1c":           5.0,
				"crp":             0.5,
				"fasting_glucose": 80,
			},
			want: nil,
		},
		{
			name:       "Value below optimal",
			biomarkers: map[string]float64{"hba1c": 3.0},
			want:       []string{"HbA1c: 3.0 % (below optimal 4.5-5.2)"},
		},
		{
			name:       "Value above optimal",
			biomarkers: map[string]float64{"hba1c": 6.0},
			want:       []string{"HbA1c: 6.0 % (above optimal 4.5-5.2)"},
		},
		{
			name:       "Boundary values are in range",
			biomarkers: map[string]float64{"hba1c": 4.5, "crp": 1.0},
			want:       nil,
		},
		{
			name:       "Unknown marker skipped regardless of value",
			biomarkers: map[string]float64{"made_up_marker": 99999},
			want:       nil,
		},
		{
			name: "Mixed known and unknown",
			biomarkers: map[string]float64{
				"made_up_marker": 1,
				"vitamin_d":      20,
			},
			want: []string{"Vitamin D: 20.0 ng/mL (below optimal 40-80)"},
		},
		{
			name: "Multiple deviations in sorted identifier order",
			biomarkers: map[string]float64{
				"triglycerides": 180,
				"hdl":           35,
				"crp":           4.2,
			},
			want: []string{
				"C-Reactive Protein: 4.2 mg/L (above optimal 0-1)",
				"HDL Cholesterol: 35.0 mg/dL (below optimal 60-100)",
				"Triglycerides: 180.0 mg/dL (above optimal 0-100)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeDeviations(tt.biomarkers)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeDeviationsBelowMessageParts(t *testing.T) {
	got := AnalyzeDeviations(map[string]float64{"hba1c": 3.0})
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "HbA1c")
	assert.Contains(t, got[0], "3.0")
	assert.Contains(t, got[0], "below optimal 4.5-5.2")
}
