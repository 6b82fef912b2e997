package plot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func years(from, to int) []time.Time {
	var out []time.Time
	for y := from; y <= to; y++ {
		out = append(out, time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC))
	}
	return out
}

func TestDrawSeriesLines(t *testing.T) {
	series := []Series{
		{Name: "Japan", Dates: years(2000, 2005), Values: []float64{5, 6, 8, 7, 9, 11}},
		{Name: "Germany", Dates: years(2000, 2005), Values: []float64{3, 2, 4, 3, 5, 4}},
	}
	png, err := DrawSeriesLines("Wheat exports by destination", "Tonnes", series)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestDrawSeriesLinesEmpty(t *testing.T) {
	_, err := DrawSeriesLines("empty", "Y", nil)
	assert.Error(t, err)
}

func TestDrawPlotBarPeriods(t *testing.T) {
	data := NewDataPeriodForGraph(
		years(2000, 2004),
		[]float64{120, 340, 220, 410, 380},
		"Tonnes",
		"Total exports per year",
		"year",
	)
	png, err := DrawPlotBar(data)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	err = os.WriteFile(filepath.Join(t.TempDir(), "output.png"), png, 0655)
	assert.NoError(t, err)
}

func TestDrawPlotBarLabels(t *testing.T) {
	data := NewDataLabelsForGraph(
		[]string{"Rose", "Tulip", "Daisy"},
		[]float64{300, 200, 80},
		"Sales",
		"Peak sales by flower",
	)
	png, err := DrawPlotBar(data)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestPeriodLabel(t *testing.T) {
	aug := time.Date(2017, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2017", PeriodLabel(aug, "year"))
	assert.Equal(t, "2017Q3", PeriodLabel(aug, "quarter"))
	jan := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1950Q1", PeriodLabel(jan, "quarter"))
}

func TestGenerateGridAllZeroValues(t *testing.T) {
	// a series of zeros yields a zero grid step; the tick loop must
	// terminate with no ticks instead of spinning
	labels := NewDataLabelsForGraph([]string{"A", "B"}, []float64{0, 0}, "Y", "flat")
	assert.Empty(t, labels.generateGrid())

	periods := NewDataPeriodForGraph(years(2000, 2001), []float64{0, 0}, "Y", "flat", "year")
	assert.Empty(t, periods.generateGrid())
}

func TestCalculateGridStep(t *testing.T) {
	assert.Equal(t, 0.0, calculateGridStep(0))
	assert.Equal(t, 0.0, calculateGridStep(-5))
	assert.InDelta(t, 0.2, calculateGridStep(1), 1e-9)
	assert.InDelta(t, 1.0, calculateGridStep(5), 1e-9)
	assert.InDelta(t, 2.0, calculateGridStep(9), 1e-9)
	assert.InDelta(t, 200, calculateGridStep(1000), 1e-9)
	assert.InDelta(t, 2000, calculateGridStep(9999), 1e-9)
}

func TestWriteHTMLReport(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	path := filepath.Join(t.TempDir(), "report.html")
	err := WriteHTMLReport(path, []FacetChart{
		{
			Title:  "Sales by flower",
			Labels: []string{"2007", "2008"},
			Series: []FacetSeries{
				{Name: "Rose", Values: []*float64{v(100), v(300)}},
				{Name: "Tulip", Values: []*float64{v(200), nil}},
			},
		},
		{
			Title:  "Totals",
			Labels: []string{"2007", "2008"},
			Series: []FacetSeries{{Name: "Total", Values: []*float64{v(300), v(300)}}},
			Bar:    true,
		},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Sales by flower")
	assert.Contains(t, string(content), "echarts")
}
