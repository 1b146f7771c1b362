// Package stats summarizes terminal outcomes across a campaign of
// independent simulation runs.
package stats

import (
	"math"
	"sort"

	"github.com/san-kum/venturesim/internal/sim"
)

// Description holds descriptive statistics for one terminal quantity.
type Description struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Report summarizes the three terminal outcomes of a campaign.
type Report struct {
	Runs        int         `json:"runs"`
	Performance Description `json:"performance"`
	Wellbeing   Description `json:"wellbeing"`
	Effort      Description `json:"effort"`
}

// Describe computes descriptive statistics over values. An empty slice
// yields the zero Description.
func Describe(values []float64) Description {
	if len(values) == 0 {
		return Description{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	variance := 0.0
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(sorted))

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Description{
		Mean:   mean,
		Std:    math.Sqrt(variance),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: median,
	}
}

// Summarize builds a Report from campaign summaries.
func Summarize(summaries []sim.Summary) Report {
	perf := make([]float64, len(summaries))
	well := make([]float64, len(summaries))
	effort := make([]float64, len(summaries))

	for i, s := range summaries {
		perf[i] = s.Performance
		well[i] = s.Wellbeing
		effort[i] = s.Effort
	}

	return Report{
		Runs:        len(summaries),
		Performance: Describe(perf),
		Wellbeing:   Describe(well),
		Effort:      Describe(effort),
	}
}
