package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSeries(t *testing.T) {
	stats := AnalyzeSeries([]float64{9, 1, 5, 3, 7})
	assert.Equal(t, 5, stats.Count)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 9.0, stats.Max)
	assert.Equal(t, 5.0, stats.Average)
	assert.Equal(t, 5.0, stats.Median)
}

func TestAnalyzeSeriesEvenCount(t *testing.T) {
	stats := AnalyzeSeries([]float64{1, 2, 3, 4})
	assert.Equal(t, 2.5, stats.Median)
}

func TestAnalyzeSeriesEmpty(t *testing.T) {
	assert.Equal(t, SeriesStats{}, AnalyzeSeries(nil))
}

func TestCalculateQuantile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	assert.Equal(t, 10.0, calculateQuantile(sorted, 0))
	assert.Equal(t, 40.0, calculateQuantile(sorted, 1))
	assert.Equal(t, 25.0, calculateQuantile(sorted, 0.5))
	assert.Equal(t, 0.0, calculateQuantile(nil, 0.5))
}
