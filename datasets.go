package main

import "github.com/pivolan/opendata_analyzer/table"

// DatasetSpec describes one Statistics Canada series dump: where its
// zip lives, which legacy columns to keep, and how the pipeline should
// partition and aggregate it.
type DatasetSpec struct {
	Name  string
	Title string
	// URL of the full-table csv zip. HistoricURL is the optional second
	// file for series whose early years ship as a separate table.
	URL         string
	HistoricURL string
	// WantHeader columns must all be present in the file header.
	WantHeader []string
	Normalize  table.NormalizeSpec
	// CategoryColumn is the canonical column whose cells distinguish
	// summary rows (matching SummaryMatch, case-insensitive substring)
	// from detail rows, and whose levels become chart series.
	CategoryColumn string
	SummaryMatch   string
	// FacetColumn optionally splits the HTML report into one chart per
	// facet value.
	FacetColumn  string
	Granularity  table.Granularity
	ScaleDivisor float64
	ScaleUnit    string
}

var grainExports = DatasetSpec{
	Name:       "grain_exports",
	Title:      "Exports of Canadian grain by destination",
	URL:        "https://www150.statcan.gc.ca/n1/tbl/csv/32100351-eng.zip",
	WantHeader: []string{"REF_DATE", "GEO", "Commodity", "Destinations", "VALUE"},
	Normalize: table.NormalizeSpec{
		Renames: map[string]string{
			"REF_DATE":     "date",
			"Commodity":    "commodity",
			"Destinations": "destination",
			"VALUE":        "value",
		},
		Keep:          []string{"date", "commodity", "destination", "value"},
		NumberColumns: []string{"value"},
		DateColumns:   []string{"date"},
	},
	CategoryColumn: "destination",
	SummaryMatch:   "total",
	FacetColumn:    "commodity",
	Granularity:    table.Annual,
	ScaleDivisor:   1e6,
	ScaleUnit:      "millions of tonnes",
}

var softDrinks = DatasetSpec{
	Name:        "soft_drinks",
	Title:       "Soft drink production",
	URL:         "https://www150.statcan.gc.ca/n1/tbl/csv/16100100-eng.zip",
	HistoricURL: "https://www150.statcan.gc.ca/n1/tbl/csv/16100099-eng.zip",
	WantHeader:  []string{"REF_DATE", "GEO", "VALUE"},
	Normalize: table.NormalizeSpec{
		Renames: map[string]string{
			"REF_DATE": "date",
			"VALUE":    "value",
		},
		Keep:          []string{"date", "value"},
		NumberColumns: []string{"value"},
		DateColumns:   []string{"date"},
	},
	Granularity:  table.Quarterly,
	ScaleDivisor: 1e3,
	ScaleUnit:    "millions of gallons",
}

var flowers = DatasetSpec{
	Name:       "flowers",
	Title:      "Greenhouse flower production and sales",
	URL:        "https://www150.statcan.gc.ca/n1/tbl/csv/32100246-eng.zip",
	WantHeader: []string{"REF_DATE", "GEO", "Output", "Flowers and plants", "VALUE"},
	Normalize: table.NormalizeSpec{
		Renames: map[string]string{
			"REF_DATE":           "date",
			"Output":             "output",
			"Flowers and plants": "flower",
			"VALUE":              "value",
		},
		Keep:          []string{"date", "output", "flower", "value"},
		NumberColumns: []string{"value"},
		DateColumns:   []string{"date"},
	},
	CategoryColumn: "flower",
	SummaryMatch:   "total",
	FacetColumn:    "output",
	Granularity:    table.Annual,
	ScaleDivisor:   1e6,
	ScaleUnit:      "millions of dollars",
}

var datasets = []DatasetSpec{grainExports, softDrinks, flowers}
