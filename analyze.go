package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pivolan/opendata_analyzer/plot"
	"github.com/pivolan/opendata_analyzer/table"
)

// runDataset executes the standard pipeline for a partition-shaped
// dataset: Load -> Normalize -> Partition -> Rollup -> ReorderLevels,
// then writes charts and reports. Summary rows aggregate separately
// from detail rows so totals never double-count.
func runDataset(spec DatasetSpec, filePath, outDir string) error {
	raw, err := table.Load(filePath, spec.WantHeader)
	if err != nil {
		return err
	}
	norm, err := table.Normalize(raw, spec.Normalize)
	if err != nil {
		return err
	}

	totals, detail, err := table.Partition(norm, spec.CategoryColumn, table.ContainsFold(spec.SummaryMatch))
	if err != nil {
		return err
	}
	totals = table.DropIncomplete(totals)
	detail = table.DropIncomplete(detail)
	log.Printf("%s: %d total rows, %d detail rows", spec.Name, totals.NumRows(), detail.NumRows())

	groupCols := []string{spec.CategoryColumn}
	if spec.FacetColumn != "" {
		groupCols = append([]string{spec.FacetColumn}, groupCols...)
	}
	detailRollup, err := table.Rollup(detail, groupCols, "date", "value", spec.Granularity)
	if err != nil {
		return err
	}
	totalsRollup, err := table.Rollup(totals, nil, "date", "value", spec.Granularity)
	if err != nil {
		return err
	}

	levels, err := table.ReorderLevels(detailRollup, spec.CategoryColumn, "value", table.Max, true)
	if err != nil {
		return err
	}

	return writeOutputs(spec, outDir, detailRollup, totalsRollup, levels)
}

// runSoftDrinks handles the one series that ships as two tables: a
// quarterly file up to 1977 and a monthly file from 1976 on. The
// monthly file upsamples to quarters and appends after the end of the
// quarterly one.
func runSoftDrinks(spec DatasetSpec, historicPath, monthlyPath, outDir string) error {
	historic, err := loadNormalized(spec, historicPath)
	if err != nil {
		return err
	}
	monthly, err := loadNormalized(spec, monthlyPath)
	if err != nil {
		return err
	}

	// regroup the historic file too; its rows are already quarterly, so
	// this only normalizes the representative dates
	historicQ, err := table.UpsampleToQuarter(historic, "date", "value")
	if err != nil {
		return err
	}
	monthlyQ, err := table.UpsampleToQuarter(monthly, "date", "value")
	if err != nil {
		return err
	}
	merged, err := table.AppendAfter(historicQ, monthlyQ, "date", time.Time{})
	if err != nil {
		return err
	}
	log.Printf("%s: %d quarters merged (%d historic, %d upsampled)",
		spec.Name, merged.NumRows(), historicQ.NumRows(), monthlyQ.NumRows())

	if err := WriteCSV(merged, filepath.Join(outDir, spec.Name+"_quarterly.csv")); err != nil {
		return err
	}

	series := extractSeries(merged, "date", "value", spec.Title, spec.ScaleDivisor)
	png, err := plot.DrawSeriesLines(spec.Title, spec.ScaleUnit, []plot.Series{series})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, spec.Name+".png"), png, 0655); err != nil {
		return err
	}

	labels := make([]string, len(series.Dates))
	facet := plot.FacetSeries{Name: spec.Title, Values: make([]*float64, len(series.Dates))}
	for i, d := range series.Dates {
		labels[i] = periodLabel(d, spec.Granularity)
		v := series.Values[i]
		facet.Values[i] = &v
	}
	if err := plot.WriteHTMLReport(filepath.Join(outDir, spec.Name+".html"), []plot.FacetChart{
		{Title: spec.Title, Labels: labels, Series: []plot.FacetSeries{facet}},
	}); err != nil {
		return err
	}

	stats := map[string]SeriesStats{spec.Title: AnalyzeSeries(rawValues(merged, "value"))}
	report := GenerateRollupTable(merged, "value", spec.ScaleDivisor) + "\n" +
		GenerateStatsTable([]string{spec.Title}, stats) + "\n"
	return os.WriteFile(filepath.Join(outDir, spec.Name+".txt"), []byte(report), 0655)
}

func loadNormalized(spec DatasetSpec, path string) (*table.Table, error) {
	raw, err := table.Load(path, spec.WantHeader)
	if err != nil {
		return nil, err
	}
	norm, err := table.Normalize(raw, spec.Normalize)
	if err != nil {
		return nil, err
	}
	return table.DropIncomplete(norm), nil
}

func writeOutputs(spec DatasetSpec, outDir string, detailRollup, totalsRollup *table.Table, levels []string) error {
	if err := WriteCSV(detailRollup, filepath.Join(outDir, spec.Name+"_rollup.csv")); err != nil {
		return err
	}
	if totalsRollup.NumRows() > 0 {
		if err := WriteCSV(totalsRollup, filepath.Join(outDir, spec.Name+"_totals.csv")); err != nil {
			return err
		}
	}

	series := buildSeries(detailRollup, spec.CategoryColumn, levels, spec.ScaleDivisor)
	if len(series) > 0 {
		png, err := plot.DrawSeriesLines(spec.Title, spec.ScaleUnit, series)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(outDir, spec.Name+".png"), png, 0655); err != nil {
			return err
		}
	}

	if spec.FacetColumn != "" {
		for _, facetValue := range distinctValues(detailRollup, spec.FacetColumn) {
			sub := filterByValue(detailRollup, spec.FacetColumn, facetValue)
			facetSeries := buildSeries(sub, spec.CategoryColumn, levels, spec.ScaleDivisor)
			if len(facetSeries) == 0 {
				continue
			}
			png, err := plot.DrawSeriesLines(spec.Title+", "+facetValue, spec.ScaleUnit, facetSeries)
			if err != nil {
				return err
			}
			name := spec.Name + "_" + slugify(facetValue) + ".png"
			if err := os.WriteFile(filepath.Join(outDir, name), png, 0655); err != nil {
				return err
			}
		}
	}

	if totalsRollup.NumRows() > 1 {
		totalSeries := extractSeries(totalsRollup, "period", "value", "Total", spec.ScaleDivisor)
		bar := plot.NewDataPeriodForGraph(totalSeries.Dates, totalSeries.Values,
			spec.ScaleUnit, spec.Title+", totals", granularityName(spec.Granularity))
		png, err := plot.DrawPlotBar(bar)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(outDir, spec.Name+"_totals.png"), png, 0655); err != nil {
			return err
		}
	}

	facets := buildFacets(detailRollup, spec, levels)
	if err := plot.WriteHTMLReport(filepath.Join(outDir, spec.Name+".html"), facets); err != nil {
		return err
	}

	stats := map[string]SeriesStats{}
	for _, s := range buildSeries(detailRollup, spec.CategoryColumn, levels, 1) {
		stats[s.Name] = AnalyzeSeries(s.Values)
	}

	divisor := spec.ScaleDivisor
	if divisor <= 0 {
		divisor = 1
	}
	var levelNames []string
	var levelPeaks []float64
	for _, level := range levels {
		s, ok := stats[level]
		if !ok {
			continue
		}
		levelNames = append(levelNames, level)
		levelPeaks = append(levelPeaks, s.Max/divisor)
	}
	if len(levelNames) > 1 {
		bar := plot.NewDataLabelsForGraph(levelNames, levelPeaks,
			spec.ScaleUnit, spec.Title+", peak by "+spec.CategoryColumn)
		png, err := plot.DrawPlotBar(bar)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(outDir, spec.Name+"_levels.png"), png, 0655); err != nil {
			return err
		}
	}

	report := GenerateRollupTable(detailRollup, "value", spec.ScaleDivisor) + "\n" +
		GenerateStatsTable(levels, stats) + "\n"
	return os.WriteFile(filepath.Join(outDir, spec.Name+".txt"), []byte(report), 0655)
}

// extractSeries pulls one plotted series from a two-column slice of an
// aggregated table, scaling values for display.
func extractSeries(t *table.Table, dateColumn, valueColumn, name string, divisor float64) plot.Series {
	if divisor <= 0 {
		divisor = 1
	}
	s := plot.Series{Name: name}
	for i := 0; i < t.NumRows(); i++ {
		d, _ := t.Cell(i, dateColumn)
		v, _ := t.Cell(i, valueColumn)
		if d.Kind() != table.KindDate || v.Kind() != table.KindNumber {
			continue
		}
		s.Dates = append(s.Dates, d.Date())
		s.Values = append(s.Values, v.Num()/divisor)
	}
	return s
}

// buildSeries splits a detail rollup into one series per category
// level, in levels order. Series with fewer than two points cannot be
// drawn as lines and are skipped.
func buildSeries(t *table.Table, categoryColumn string, levels []string, divisor float64) []plot.Series {
	if divisor <= 0 {
		divisor = 1
	}
	var out []plot.Series
	for _, level := range levels {
		s := plot.Series{Name: level}
		for i := 0; i < t.NumRows(); i++ {
			c, _ := t.Cell(i, categoryColumn)
			if c.Str() != level {
				continue
			}
			d, _ := t.Cell(i, "period")
			v, _ := t.Cell(i, "value")
			s.Dates = append(s.Dates, d.Date())
			s.Values = append(s.Values, v.Num()/divisor)
		}
		if len(s.Dates) < 2 {
			log.Printf("series %q has %d points, not drawn", level, len(s.Dates))
			continue
		}
		out = append(out, s)
	}
	return out
}

// buildFacets shapes a detail rollup into the HTML report: one chart
// per facet value (or a single chart without FacetColumn), one line
// per category level in legend order, gaps preserved as gaps.
func buildFacets(t *table.Table, spec DatasetSpec, levels []string) []plot.FacetChart {
	divisor := spec.ScaleDivisor
	if divisor <= 0 {
		divisor = 1
	}

	facetValues := []string{""}
	if spec.FacetColumn != "" {
		facetValues = distinctValues(t, spec.FacetColumn)
	}

	// shared X axis: every period present anywhere in the rollup
	var labels []string
	labelIndex := map[string]int{}
	for i := 0; i < t.NumRows(); i++ {
		d, _ := t.Cell(i, "period")
		label := periodLabel(d.Date(), spec.Granularity)
		if _, ok := labelIndex[label]; !ok {
			labelIndex[label] = len(labels)
			labels = append(labels, label)
		}
	}

	var facets []plot.FacetChart
	for _, facetValue := range facetValues {
		title := spec.Title
		if facetValue != "" {
			title = spec.Title + ", " + facetValue
		}
		chart := plot.FacetChart{Title: title, Labels: labels}
		for _, level := range levels {
			fs := plot.FacetSeries{Name: level, Values: make([]*float64, len(labels))}
			found := false
			for i := 0; i < t.NumRows(); i++ {
				c, _ := t.Cell(i, spec.CategoryColumn)
				if c.Str() != level {
					continue
				}
				if spec.FacetColumn != "" {
					f, _ := t.Cell(i, spec.FacetColumn)
					if f.Str() != facetValue {
						continue
					}
				}
				d, _ := t.Cell(i, "period")
				v, _ := t.Cell(i, "value")
				scaled := v.Num() / divisor
				fs.Values[labelIndex[periodLabel(d.Date(), spec.Granularity)]] = &scaled
				found = true
			}
			if found {
				chart.Series = append(chart.Series, fs)
			}
		}
		if len(chart.Series) > 0 {
			facets = append(facets, chart)
		}
	}
	return facets
}

// distinctValues lists the values of a column in first-appearance order.
func distinctValues(t *table.Table, column string) []string {
	seen := map[string]bool{}
	var out []string
	for i := 0; i < t.NumRows(); i++ {
		v, _ := t.Cell(i, column)
		if !seen[v.Str()] {
			seen[v.Str()] = true
			out = append(out, v.Str())
		}
	}
	return out
}

// filterByValue keeps the rows whose column equals value.
func filterByValue(t *table.Table, column, value string) *table.Table {
	out := table.New(t.Columns()...)
	for i := 0; i < t.NumRows(); i++ {
		v, _ := t.Cell(i, column)
		if v.Str() != value {
			continue
		}
		_ = out.AppendRow(t.Row(i)...)
	}
	return out
}

// granularityName maps a rollup granularity to the label mode of
// plot.PeriodLabel.
func granularityName(g table.Granularity) string {
	if g == table.Quarterly {
		return "quarter"
	}
	return "year"
}

func periodLabel(t time.Time, g table.Granularity) string {
	return plot.PeriodLabel(t, granularityName(g))
}

func rawValues(t *table.Table, valueColumn string) []float64 {
	var out []float64
	for i := 0; i < t.NumRows(); i++ {
		v, _ := t.Cell(i, valueColumn)
		if v.Kind() == table.KindNumber {
			out = append(out, v.Num())
		}
	}
	return out
}
