package plot

import (
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// dataPeriodForGraph feeds DrawPlotBar with one bar per period of an
// aggregated series. granularity is "year" or "quarter" and controls
// the bar labels.
type dataPeriodForGraph struct {
	xValues     []time.Time
	yValues     []float64
	nameYAxis   string
	nameGraph   string
	granularity string
}

func NewDataPeriodForGraph(x []time.Time, y []float64, nameYAxis, nameGraph, granularity string) dataPeriodForGraph {
	return dataPeriodForGraph{
		xValues:     x,
		yValues:     y,
		nameYAxis:   nameYAxis,
		nameGraph:   nameGraph,
		granularity: granularity,
	}
}

func (d dataPeriodForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataPeriodForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataPeriodForGraph) getYValues() []float64 {
	return d.yValues
}
func (d dataPeriodForGraph) lenXValues() int {
	return len(d.xValues)
}

// PeriodLabel formats a period start date for axis labels and legends:
// "2017" for a year, "2017Q3" for a quarter.
func PeriodLabel(t time.Time, granularity string) string {
	if granularity == "quarter" {
		return fmt.Sprintf("%dQ%d", t.Year(), (int(t.Month())+2)/3)
	}
	return fmt.Sprintf("%d", t.Year())
}

func (d dataPeriodForGraph) periodLabels() []string {
	labels := make([]string, len(d.xValues))
	for i, t := range d.xValues {
		labels[i] = PeriodLabel(t, d.granularity)
	}
	return labels
}

func (d dataPeriodForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	if len(d.yValues) == 0 || d.lenXValues() <= 0 || minBarWidth <= 0 {
		return 0, 0
	}
	x := 1.1
	if d.lenXValues() < 2 {
		x = 10.0
	} else if d.lenXValues() < 10 {
		x = 3.0
	}

	const (
		paddingY     = 100        // room for the Y axis and its labels
		spacingRatio = 0.2        // gap between bars relative to bar width
		aspectRatio  = 9.0 / 16.0 // default aspect ratio
	)

	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(d.lenXValues()) + paddingY
	width = int(totalWidth*x) + paddingY
	height = int(float64(width) * aspectRatio)
	return width, height
}

func (d dataPeriodForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for i, label := range d.periodLabels() {
		bars = append(bars, chart.Value{
			Value: d.yValues[i],
			Label: label,
			Style: chart.Style{
				FillColor:         drawing.ColorLime.WithAlpha(40),
				TextVerticalAlign: 100,
			},
		})
	}
	return bars
}

func (d dataPeriodForGraph) generateGrid() []chart.Tick {
	var ticks []chart.Tick
	max := findMaxValue(d.yValues)
	gridStep := calculateGridStep(max)
	if gridStep <= 0 {
		return ticks
	}
	for i := 0.0; i <= max; i += gridStep {
		ticks = append(ticks, chart.Tick{
			Value: i,
			Label: fmt.Sprintf("%.1f", i),
		})
	}
	return ticks
}
