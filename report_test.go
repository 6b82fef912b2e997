package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/opendata_analyzer/table"
)

func rollupFixture(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New("destination", "period", "value")
	jan := func(year int) table.Value {
		return table.Date(time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC))
	}
	require.NoError(t, tbl.AppendRow(table.Str("Germany"), jan(2017), table.Num(2000000)))
	require.NoError(t, tbl.AppendRow(table.Str("Japan"), jan(2017), table.Num(500000)))
	return tbl
}

func TestGenerateRollupTable(t *testing.T) {
	got := GenerateRollupTable(rollupFixture(t), "value", 1e6)
	assert.Contains(t, got, "DESTINATION")
	assert.Contains(t, got, "PERIOD")
	assert.Contains(t, got, "Germany")
	// measure scaled to millions for display
	assert.Contains(t, got, "2.000")
	assert.Contains(t, got, "0.500")
	assert.NotContains(t, got, "2000000")
}

func TestGenerateStatsTable(t *testing.T) {
	stats := map[string]SeriesStats{
		"Germany": {Count: 3, Min: 1, Max: 9, Average: 4, Median: 2},
		"Japan":   {Count: 2, Min: 2, Max: 4, Average: 3, Median: 3},
	}
	got := GenerateStatsTable([]string{"Germany", "Japan"}, stats)
	assert.Contains(t, got, "SERIES")
	assert.Contains(t, got, "MEDIAN")
	germanyAt := strings.Index(got, "Germany")
	japanAt := strings.Index(got, "Japan")
	require.True(t, germanyAt >= 0 && japanAt >= 0)
	assert.Less(t, germanyAt, japanAt)
}

func TestGenerateStatsTableSkipsLevelsWithoutStats(t *testing.T) {
	stats := map[string]SeriesStats{
		"Japan": {Count: 2, Min: 2, Max: 4, Average: 3, Median: 3},
	}
	// Germany had too few points for a series; no fake zero row for it
	got := GenerateStatsTable([]string{"Japan", "Germany"}, stats)
	assert.Contains(t, got, "Japan")
	assert.NotContains(t, got, "Germany")
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollup.csv")
	require.NoError(t, WriteCSV(rollupFixture(t), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "destination,period,value\nGermany,2017-01-01,2000000\nJapan,2017-01-01,500000\n", string(content))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "total_exports_all_destinations", slugify("Total exports, all destinations"))
	assert.Equal(t, "becancour", slugify("Bécancour"))
	assert.Equal(t, "wheat_excluding_durum", slugify("Wheat, excluding durum"))
}
