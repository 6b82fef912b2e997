package table

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grainNormalize = NormalizeSpec{
	Renames: map[string]string{
		"REF_DATE":     "date",
		"Destinations": "destination",
		"Commodity":    "commodity",
		"VALUE":        "value",
	},
	Keep:          []string{"date", "destination", "commodity", "value"},
	NumberColumns: []string{"value"},
	DateColumns:   []string{"date"},
}

func TestNormalize(t *testing.T) {
	raw := New("REF_DATE", "GEO", "Commodity", "Destinations", "VALUE")
	addRow(t, raw, Str("2017-08"), Str("Canada"), Str("Wheat"), Str("Germany"), Str("123.4"))
	addRow(t, raw, Str("2017-09"), Str("Canada"), Str("Wheat"), Str("Japan"), Missing)

	out, err := Normalize(raw, grainNormalize)
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "destination", "commodity", "value"}, out.Columns())
	assert.Equal(t, 2, out.NumRows())

	d, _ := out.Cell(0, "date")
	assert.Equal(t, Date(time.Date(2017, 8, 1, 0, 0, 0, 0, time.UTC)), d)
	v, _ := out.Cell(0, "value")
	assert.Equal(t, Num(123.4), v)
	v, _ = out.Cell(1, "value")
	assert.True(t, v.IsMissing())
	// GEO is dropped
	_, ok := out.ColumnIndex("GEO")
	assert.False(t, ok)
}

func TestNormalizeMalformedNumber(t *testing.T) {
	raw := New("REF_DATE", "VALUE")
	addRow(t, raw, Str("2017-08"), Str("n/a"))

	_, err := Normalize(raw, NormalizeSpec{
		Keep:          []string{"date", "value"},
		Renames:       map[string]string{"REF_DATE": "date", "VALUE": "value"},
		NumberColumns: []string{"value"},
		DateColumns:   []string{"date"},
	})
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "value", perr.Field)
}

func TestNormalizeMalformedDate(t *testing.T) {
	raw := New("REF_DATE", "VALUE")
	addRow(t, raw, Str("August 2017"), Str("1"))

	_, err := Normalize(raw, NormalizeSpec{
		Keep:          []string{"date", "value"},
		Renames:       map[string]string{"REF_DATE": "date", "VALUE": "value"},
		NumberColumns: []string{"value"},
		DateColumns:   []string{"date"},
	})
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestNormalizeAmbiguousRename(t *testing.T) {
	raw := New("REF_DATE", "Ref Date", "VALUE")
	addRow(t, raw, Str("2017-08"), Str("2017-09"), Str("1"))

	_, err := Normalize(raw, NormalizeSpec{
		Keep: []string{"date", "value"},
		Renames: map[string]string{
			"REF_DATE": "date",
			"Ref Date": "date",
			"VALUE":    "value",
		},
		NumberColumns: []string{"value"},
		DateColumns:   []string{"date"},
	})
	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "date", serr.Column)
	// the message does not depend on map iteration order
	assert.Contains(t, err.Error(), `renamed from both "REF_DATE" and "Ref Date"`)
}

func TestNormalizeMissingColumn(t *testing.T) {
	raw := New("REF_DATE")
	_, err := Normalize(raw, grainNormalize)
	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "destination", serr.Column)
}
