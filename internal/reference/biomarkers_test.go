package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBiomarker(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantOK   bool
		wantLow  float64
		wantHigh float64
		wantUnit string
	}{
		{"Known marker hba1c", "hba1c", true, 4.5, 5.2, "%"},
		{"Known marker crp", "crp", true, 0, 1.0, "mg/L"},
		{"Known marker telomere_length", "telomere_length", true, 7, 9, "kb"},
		{"Unknown marker", "made_up_marker", false, 0, 0, ""},
		{"Empty identifier", "", false, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := LookupBiomarker(tt.id)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantLow, r.Low())
				assert.Equal(t, tt.wantHigh, r.High())
				assert.Equal(t, tt.wantUnit, r.Unit)
			}
		})
	}
}

func TestBiomarkerRangesIsCopy(t *testing.T) {
	ranges := BiomarkerRanges()
	require.Len(t, ranges, 10)

	ranges["hba1c"] = BiomarkerRange{Optimal: [2]float64{0, 0}}
	fresh, ok := LookupBiomarker("hba1c")
	require.True(t, ok)
	assert.Equal(t, 4.5, fresh.Low())
}

func TestInterventions(t *testing.T) {
	list := Interventions()
	require.Len(t, list, 12)
	assert.Equal(t, "caloric restriction", list[0])
	assert.Equal(t, "resveratrol", list[11])

	list[0] = "mutated"
	assert.Equal(t, "caloric restriction", Interventions()[0])
}

func TestTopInterventions(t *testing.T) {
	assert.Equal(t, []string{"caloric restriction", "time-restricted eating", "metformin"}, TopInterventions(3))
	assert.Len(t, TopInterventions(100), 12)
	assert.Empty(t, TopInterventions(0))
}
