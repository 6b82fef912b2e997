package table

import (
	"sort"
	"strings"
)

// Granularity selects the period width of a rollup.
type Granularity int

const (
	Annual Granularity = iota
	Quarterly
)

type rollupGroup struct {
	cells  Row // group column values, in groupColumns order
	period Period
	sum    float64
}

// Rollup groups rows by (groupColumns..., period derived from
// periodColumn) and sums measureColumn within each group. Rows with a
// missing measure are dropped, not counted as zero. Periods absent from
// the input stay absent; nothing is zero-filled. The output carries one
// row per distinct group, sorted by group values then period, columns
// groupColumns..., "period", measureColumn.
func Rollup(t *Table, groupColumns []string, periodColumn, measureColumn string, g Granularity) (*Table, error) {
	groupIdx := make([]int, len(groupColumns))
	for i, c := range groupColumns {
		ci, ok := t.ColumnIndex(c)
		if !ok {
			return nil, &SchemaError{Column: c}
		}
		groupIdx[i] = ci
	}
	pi, ok := t.ColumnIndex(periodColumn)
	if !ok {
		return nil, &SchemaError{Column: periodColumn}
	}
	mi, ok := t.ColumnIndex(measureColumn)
	if !ok {
		return nil, &SchemaError{Column: measureColumn}
	}

	groups := map[string]*rollupGroup{}
	for _, row := range t.rows {
		measure := row[mi]
		if measure.IsMissing() {
			continue
		}
		if measure.Kind() != KindNumber {
			return nil, &SchemaError{Column: measureColumn, Reason: "is not numeric"}
		}
		dv := row[pi]
		if dv.Kind() != KindDate {
			return nil, &SchemaError{Column: periodColumn, Reason: "is not a date"}
		}
		p := periodOf(dv.Date())
		if g == Annual {
			p.Quarter = 0
		}

		parts := make([]string, 0, len(groupIdx)+1)
		cells := make(Row, len(groupIdx))
		for i, gi := range groupIdx {
			parts = append(parts, row[gi].String())
			cells[i] = row[gi]
		}
		parts = append(parts, p.String())
		key := strings.Join(parts, "\x00")

		grp, ok := groups[key]
		if !ok {
			grp = &rollupGroup{cells: cells, period: p}
			groups[key] = grp
		}
		grp.sum += measure.Num()
	}

	// deterministic output order: group values, then period
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := New(append(append([]string(nil), groupColumns...), "period", measureColumn)...)
	for _, k := range keys {
		grp := groups[k]
		row := make(Row, 0, len(grp.cells)+2)
		row = append(row, grp.cells...)
		row = append(row, Date(grp.period.Start()), Num(grp.sum))
		out.rows = append(out.rows, row)
	}
	return out, nil
}
