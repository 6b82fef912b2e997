package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// dataLabelsForGraph feeds DrawPlotBar with one bar per category level,
// e.g. peak sales per flower type, in the order ReorderLevels produced.
type dataLabelsForGraph struct {
	xValues   []string
	yValues   []float64
	nameYAxis string
	nameGraph string
}

func NewDataLabelsForGraph(xValues []string, y []float64, nameYAxis, nameGraph string) dataLabelsForGraph {
	return dataLabelsForGraph{
		xValues:   xValues,
		yValues:   y,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataLabelsForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataLabelsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataLabelsForGraph) getYValues() []float64 {
	return d.yValues
}
func (d dataLabelsForGraph) lenXValues() int {
	return len(d.xValues)
}

func (d dataLabelsForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
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
		paddingY     = 100
		spacingRatio = 0.2
		aspectRatio  = 9.0 / 16.0
	)

	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(d.lenXValues()) + paddingY
	width = int(totalWidth*x) + paddingY
	height = int(float64(width) * aspectRatio)
	return width, height
}

func (d dataLabelsForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for i := 0; i < len(d.xValues); i++ {
		bars = append(bars, chart.Value{
			Value: d.yValues[i],
			Label: d.xValues[i],
			Style: chart.Style{
				FillColor: drawing.ColorPurple.WithAlpha(100),
			},
		})
	}
	return bars
}

func (d dataLabelsForGraph) generateGrid() []chart.Tick {
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
