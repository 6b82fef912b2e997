package main

import (
	"math"
	"sort"
)

// SeriesStats summarizes one aggregated series for the text report.
type SeriesStats struct {
	Count   int
	Min     float64
	Max     float64
	Average float64
	Median  float64
}

// AnalyzeSeries computes summary statistics over the measure values of
// one series.
func AnalyzeSeries(values []float64) SeriesStats {
	if len(values) == 0 {
		return SeriesStats{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return SeriesStats{
		Count:   len(sorted),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Average: sum / float64(len(sorted)),
		Median:  calculateQuantile(sorted, 0.5),
	}
}

// calculateQuantile interpolates the p-quantile of a sorted slice.
func calculateQuantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	pos := p * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)

	if floor == ceil {
		return sorted[int(pos)]
	}

	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	return lower + (upper-lower)*(pos-floor)
}
