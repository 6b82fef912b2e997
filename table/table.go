// Package table implements the in-memory tabular pipeline used by the
// dataset analyzers: load, normalize, partition summary rows from detail
// rows, roll up to annual or quarterly periods, reorder category levels.
// Every operation returns a new Table; nothing mutates its input.
package table

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the type stored in a Value.
type Kind int

const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindDate
)

// Value is one typed cell. The zero value is a missing cell.
type Value struct {
	kind Kind
	s    string
	n    float64
	d    time.Time
}

// Missing is the absent-cell value.
var Missing = Value{}

func Str(s string) Value       { return Value{kind: KindString, s: s} }
func Num(n float64) Value      { return Value{kind: KindNumber, n: n} }
func Date(t time.Time) Value   { return Value{kind: KindDate, d: t} }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsMissing() bool { return v.kind == KindMissing }
func (v Value) Str() string     { return v.s }
func (v Value) Num() float64    { return v.n }
func (v Value) Date() time.Time { return v.d }

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindNumber:
		return v.n == o.n
	case KindDate:
		return v.d.Equal(o.d)
	}
	return true
}

// String renders the cell for reports and CSV export.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindDate:
		return v.d.Format("2006-01-02")
	}
	return ""
}

// Row is one observation; cells are positional and match Table.Columns.
type Row []Value

// Table is an ordered sequence of typed rows with named columns.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// New creates an empty table with the given column names.
func New(columns ...string) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		t.index[c] = i
	}
	return t
}

func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }
func (t *Table) NumRows() int      { return len(t.rows) }

// ColumnIndex returns the position of a column by name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// AppendRow adds one row; the number of values must match the columns.
func (t *Table) AppendRow(values ...Value) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("append row: got %d values, table has %d columns", len(values), len(t.columns))
	}
	t.rows = append(t.rows, append(Row(nil), values...))
	return nil
}

// Row returns row i. Callers must not modify it.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Cell returns the value at row i, column name.
func (t *Table) Cell(i int, column string) (Value, bool) {
	ci, ok := t.index[column]
	if !ok {
		return Missing, false
	}
	return t.rows[i][ci], true
}

// emptyLike creates a table with the same columns and no rows.
func (t *Table) emptyLike() *Table {
	return New(t.columns...)
}

func (t *Table) appendRowCopy(r Row) {
	t.rows = append(t.rows, append(Row(nil), r...))
}

// sameColumns reports whether two tables have identical column lists,
// names and order both.
func sameColumns(a, b *Table) bool {
	if len(a.columns) != len(b.columns) {
		return false
	}
	for i := range a.columns {
		if a.columns[i] != b.columns[i] {
			return false
		}
	}
	return true
}
