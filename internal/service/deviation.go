package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/longevity-index-server/internal/reference"
)

// AnalyzeDeviations compares measured biomarker values against the optimal
// reference ranges and returns a human-readable description for every value
// outside its range. Unknown identifiers and in-range values are skipped.
// Identifiers are visited in sorted order so the output is deterministic.
func AnalyzeDeviations(biomarkers map[string]float64) []string {
	if len(biomarkers) == 0 {
		return nil
	}

	ids := make([]string, 0, len(biomarkers))
	for id := range biomarkers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var issues []string
	for _, id := range ids {
		r, ok := reference.LookupBiomarker(id)
		if !ok {
			continue
		}
		value := biomarkers[id]
		switch {
		case value < r.Low():
			issues = append(issues, fmt.Sprintf("%s: %s %s (below optimal %s-%s)",
				r.Name, formatValue(value), r.Unit, formatBound(r.Low()), formatBound(r.High())))
		case value > r.High():
			issues = append(issues, fmt.Sprintf("%s: %s %s (above optimal %s-%s)",
				r.Name, formatValue(value), r.Unit, formatBound(r.Low()), formatBound(r.High())))
		}
	}
	return issues
}

// formatValue renders a measured value the way a decoded JSON number prints:
// integral floats keep one decimal place (6.0, not 6).
func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatBound renders a range bound compactly (0-100, 4.5-5.2).
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
