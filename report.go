package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strings"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/mozillazg/go-unidecode"

	"github.com/pivolan/opendata_analyzer/table"
)

// GenerateRollupTable renders an aggregated table as text. The measure
// column scales by divisor for display only; the csv export keeps raw
// values.
func GenerateRollupTable(t *table.Table, measureColumn string, divisor float64) string {
	tw := prettytable.NewWriter()

	header := prettytable.Row{}
	for _, c := range t.Columns() {
		header = append(header, c)
	}
	tw.AppendHeader(header)

	mi, hasMeasure := t.ColumnIndex(measureColumn)
	for i := 0; i < t.NumRows(); i++ {
		row := prettytable.Row{}
		for j, v := range t.Row(i) {
			if hasMeasure && j == mi && v.Kind() == table.KindNumber && divisor > 0 {
				row = append(row, fmt.Sprintf("%.3f", v.Num()/divisor))
			} else {
				row = append(row, v.String())
			}
		}
		tw.AppendRows([]prettytable.Row{row})
	}

	tw.SetStyle(prettytable.StyleDefault)
	return tw.Render()
}

// GenerateStatsTable renders per-series summary statistics in level
// order. Levels without computed stats are left out rather than shown
// as rows of zeros.
func GenerateStatsTable(levels []string, stats map[string]SeriesStats) string {
	tw := prettytable.NewWriter()
	tw.AppendHeader(prettytable.Row{"Series", "Count", "Min", "Max", "Average", "Median"})
	for _, level := range levels {
		s, ok := stats[level]
		if !ok {
			continue
		}
		tw.AppendRows([]prettytable.Row{
			{level, s.Count, s.Min, s.Max, s.Average, s.Median},
		})
	}
	tw.SetStyle(prettytable.StyleDefault)
	return tw.Render()
}

// WriteCSV exports a table with the canonical output schema
// {category columns..., period, value}.
func WriteCSV(t *table.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns()); err != nil {
		return err
	}
	for i := 0; i < t.NumRows(); i++ {
		record := make([]string, 0, len(t.Columns()))
		for _, v := range t.Row(i) {
			record = append(record, v.String())
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

var nonAlnum = regexp.MustCompile("[^a-zA-Z0-9]+")

// slugify turns a dataset or series title into a safe file name part.
func slugify(input string) string {
	s := unidecode.Unidecode(input)
	s = nonAlnum.ReplaceAllString(s, "_")
	s = strings.ReplaceAll(s, "__", "_")
	s = strings.Trim(s, "_")
	return strings.ToLower(s)
}
