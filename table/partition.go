package table

import "strings"

// Predicate tests one category cell.
type Predicate func(string) bool

// ContainsFold matches values containing substr, case-insensitive.
// StatCan category columns mark rollup rows with wording like
// "Total exports, all destinations"; this is the predicate for them.
func ContainsFold(substr string) Predicate {
	sub := strings.ToLower(substr)
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), sub)
	}
}

// Partition splits t into rows where pred holds on categoryColumn and
// rows where it does not. Rows with a missing category cell land in
// neither output. An empty matched table is not an error.
func Partition(t *Table, categoryColumn string, pred Predicate) (matched, unmatched *Table, err error) {
	ci, ok := t.ColumnIndex(categoryColumn)
	if !ok {
		return nil, nil, &SchemaError{Column: categoryColumn}
	}
	matched = t.emptyLike()
	unmatched = t.emptyLike()
	for _, row := range t.rows {
		v := row[ci]
		if v.IsMissing() {
			continue
		}
		if pred(v.Str()) {
			matched.appendRowCopy(row)
		} else {
			unmatched.appendRowCopy(row)
		}
	}
	return matched, unmatched, nil
}

// DropIncomplete removes every row that has a missing value in any
// column. Applied to each partition independently, after Partition.
func DropIncomplete(t *Table) *Table {
	out := t.emptyLike()
	for _, row := range t.rows {
		complete := true
		for _, v := range row {
			if v.IsMissing() {
				complete = false
				break
			}
		}
		if complete {
			out.appendRowCopy(row)
		}
	}
	return out
}
