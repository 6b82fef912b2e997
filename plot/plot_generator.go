package plot

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Series is one plotted time series: an aggregated measure per period
// for a single category level.
type Series struct {
	Name   string
	Dates  []time.Time
	Values []float64
}

// DrawSeriesLines renders every series as a line over time. Series come
// pre-ordered (ReorderLevels order); the first one is the highlighted
// series and draws in color, the rest in gray so the chart reads like a
// highlight plot. Output is PNG bytes.
func DrawSeriesLines(title, nameYAxis string, series []Series) ([]byte, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no series to draw")
	}

	gray := drawing.ColorFromHex("9a9a9a")
	var chartSeries []chart.Series
	var maxVal float64
	for i, s := range series {
		style := chart.Style{
			StrokeColor: gray,
			StrokeWidth: 1.5,
		}
		if i == 0 {
			style = chart.Style{
				StrokeColor: drawing.ColorBlue,
				StrokeWidth: 3,
			}
		}
		chartSeries = append(chartSeries, chart.TimeSeries{
			Name:    s.Name,
			XValues: s.Dates,
			YValues: s.Values,
			Style:   style,
		})
		if m := findMaxValue(s.Values); m > maxVal {
			maxVal = m
		}
	}

	var ticks []chart.Tick
	if step := calculateGridStep(maxVal); step > 0 {
		for i := 0.0; i <= maxVal+step; i += step {
			ticks = append(ticks, chart.Tick{Value: i, Label: fmt.Sprintf("%.0f", i)})
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  2048,
		Height: 1024,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			Name:  nameYAxis,
			Ticks: ticks,
		},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	graph.Background.StrokeWidth = 1
	graph.Background.StrokeColor = drawing.ColorFromHex("efefef")

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

// DrawPlotBar renders one bar chart from any of the data adapters.
func DrawPlotBar(data dataForGraph) ([]byte, error) {
	barValues := data.generateBarValues()
	paddingX := customizePaddingXBottom(barValues)
	width, height := data.calculateChartDimensions(100)

	bar := chart.BarChart{}
	bar.Title = data.GetNameGraph()
	bar.Background = chart.Style{
		FontSize:    160,
		StrokeColor: chart.ColorBlack,
		Padding: chart.Box{
			Bottom: paddingX,
			Top:    50,
		},
	}
	bar.Height = height + 50
	bar.Width = width + paddingX + 50
	bar.BarWidth = 60
	bar.Bars = barValues
	bar.YAxis = chart.YAxis{
		Name: data.getNameYAxis(),
		Range: &chart.ContinuousRange{
			Min: 0.0,
			Max: findMaxValue(data.getYValues()),
		},
		Style: chart.Style{
			StrokeWidth: 2,
			StrokeColor: chart.ColorBlack,
			FontSize:    17,
		},
		Ticks: data.generateGrid(),
		GridMinorStyle: chart.Style{
			StrokeColor: chart.ColorBlack,
			StrokeWidth: 1,
			DotWidth:    1,
		},
		GridMajorStyle: chart.Style{
			StrokeColor:     chart.ColorBlack,
			StrokeWidth:     1,
			DotWidth:        1,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
	bar.XAxis = chart.Style{
		StrokeWidth:         2,
		StrokeColor:         chart.ColorBlack,
		TextRotationDegrees: 88,
		FontSize:            17,
	}

	buffer := bytes.NewBuffer([]byte{})
	err := bar.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

// calculateGridStep picks a readable tick step for a Y axis that has to
// reach maxValue.
func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	if maxValue < 1e-10 {
		return 1e-10
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude
	// round large steps to round numbers
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}
	return finalStep
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	max := y[0]
	for _, v := range y {
		if v > max {
			max = v
		}
	}
	return max
}

func customizePaddingXBottom(values []chart.Value) int {
	count := 0
	for _, v := range values {
		if len(v.Label) > count {
			count = len(v.Label)
		}
	}
	return int(count * 8)
}
