package plot

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// FacetSeries is one line or bar group inside a facet chart, aligned
// with the facet's period labels. nil means the period is absent for
// this level and renders as a gap, not a zero.
type FacetSeries struct {
	Name   string
	Values []*float64
}

// FacetChart is one chart of the HTML report, typically one facet per
// commodity or output type with a line per category level. Series order
// is the ReorderLevels order and becomes the legend order.
type FacetChart struct {
	Title  string
	Labels []string
	Series []FacetSeries
	Bar    bool
}

// WriteHTMLReport renders all facet charts into a single standalone
// HTML page at path.
func WriteHTMLReport(path string, facets []FacetChart) error {
	page := components.NewPage()
	for _, facet := range facets {
		if facet.Bar {
			bar := charts.NewBar()
			bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: facet.Title}))
			bar.SetXAxis(facet.Labels)
			for _, s := range facet.Series {
				data := make([]opts.BarData, len(s.Values))
				for i, v := range s.Values {
					if v != nil {
						data[i] = opts.BarData{Value: *v}
					} else {
						data[i] = opts.BarData{Value: "-"}
					}
				}
				bar.AddSeries(s.Name, data)
			}
			page.AddCharts(bar)
			continue
		}

		line := charts.NewLine()
		line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: facet.Title}))
		line.SetXAxis(facet.Labels)
		for _, s := range facet.Series {
			data := make([]opts.LineData, len(s.Values))
			for i, v := range s.Values {
				if v != nil {
					data[i] = opts.LineData{Value: *v}
				} else {
					data[i] = opts.LineData{Value: "-"}
				}
			}
			line.AddSeries(s.Name, data)
		}
		page.AddCharts(line)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return page.Render(f)
}
