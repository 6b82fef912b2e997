package table

import (
	"sort"
	"time"
)

// UpsampleToQuarter converts a monthly series into quarterly totals:
// rows group by (year, quarter) of dateColumn, measureColumn sums, and
// each group re-expands to the first date of its quarter. The output
// keeps the input column names, sorted by date.
func UpsampleToQuarter(t *Table, dateColumn, measureColumn string) (*Table, error) {
	di, ok := t.ColumnIndex(dateColumn)
	if !ok {
		return nil, &SchemaError{Column: dateColumn}
	}
	mi, ok := t.ColumnIndex(measureColumn)
	if !ok {
		return nil, &SchemaError{Column: measureColumn}
	}

	sums := map[Period]float64{}
	for _, row := range t.rows {
		measure := row[mi]
		if measure.IsMissing() {
			continue
		}
		if measure.Kind() != KindNumber {
			return nil, &SchemaError{Column: measureColumn, Reason: "is not numeric"}
		}
		dv := row[di]
		if dv.Kind() != KindDate {
			return nil, &SchemaError{Column: dateColumn, Reason: "is not a date"}
		}
		sums[periodOf(dv.Date())] += measure.Num()
	}

	periods := make([]Period, 0, len(sums))
	for p := range sums {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	out := New(dateColumn, measureColumn)
	for _, p := range periods {
		out.rows = append(out.rows, Row{Date(p.Start()), Num(sums[p])})
	}
	return out, nil
}

// AppendAfter extends base with the rows of add that fall strictly
// after the cutoff date. A zero cutoff means the maximum date present
// in base. The result is base plus the retained add rows in ascending
// date order. If a retained date already exists in base the cutoff was
// wrong and the merge fails with OverlapError.
func AppendAfter(base, add *Table, dateColumn string, cutoff time.Time) (*Table, error) {
	if !sameColumns(base, add) {
		return nil, &SchemaError{Column: dateColumn, Reason: "tables have different columns"}
	}
	di, ok := base.ColumnIndex(dateColumn)
	if !ok {
		return nil, &SchemaError{Column: dateColumn}
	}

	seen := map[time.Time]bool{}
	var maxDate time.Time
	for _, row := range base.rows {
		dv := row[di]
		if dv.Kind() != KindDate {
			return nil, &SchemaError{Column: dateColumn, Reason: "is not a date"}
		}
		d := dv.Date()
		seen[d] = true
		if d.After(maxDate) {
			maxDate = d
		}
	}
	if cutoff.IsZero() {
		cutoff = maxDate
	}

	out := base.emptyLike()
	for _, row := range base.rows {
		out.appendRowCopy(row)
	}
	for _, row := range add.rows {
		dv := row[di]
		if dv.Kind() != KindDate {
			return nil, &SchemaError{Column: dateColumn, Reason: "is not a date"}
		}
		d := dv.Date()
		if !d.After(cutoff) {
			continue
		}
		if seen[d] {
			return nil, &OverlapError{Date: d}
		}
		out.appendRowCopy(row)
	}

	sort.SliceStable(out.rows, func(i, j int) bool {
		return out.rows[i][di].Date().Before(out.rows[j][di].Date())
	})
	return out, nil
}
