package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addRow is the test helper used across this package.
func addRow(t *testing.T, tbl *Table, values ...Value) {
	t.Helper()
	require.NoError(t, tbl.AppendRow(values...))
}

func TestValueKinds(t *testing.T) {
	assert.True(t, Missing.IsMissing())
	assert.Equal(t, KindString, Str("x").Kind())
	assert.Equal(t, KindNumber, Num(1.5).Kind())
	d := time.Date(2007, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, KindDate, Date(d).Kind())
	assert.Equal(t, d, Date(d).Date())
	assert.Equal(t, "2007-03-01", Date(d).String())
	assert.Equal(t, "1.5", Num(1.5).String())
	assert.Equal(t, "", Missing.String())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Str("a").Equal(Str("a")))
	assert.False(t, Str("a").Equal(Str("b")))
	assert.False(t, Str("1").Equal(Num(1)))
	assert.True(t, Missing.Equal(Missing))
}

func TestAppendRowArity(t *testing.T) {
	tbl := New("a", "b")
	assert.NoError(t, tbl.AppendRow(Str("x"), Num(1)))
	assert.Error(t, tbl.AppendRow(Str("x")))
	assert.Equal(t, 1, tbl.NumRows())
}

func TestCell(t *testing.T) {
	tbl := New("destination", "value")
	addRow(t, tbl, Str("Germany"), Num(3))

	v, ok := tbl.Cell(0, "destination")
	assert.True(t, ok)
	assert.Equal(t, "Germany", v.Str())

	_, ok = tbl.Cell(0, "no_such_column")
	assert.False(t, ok)

	_, ok = tbl.ColumnIndex("value")
	assert.True(t, ok)
}
