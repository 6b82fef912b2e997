package table

import "sort"

// LevelStat selects the statistic ReorderLevels ranks levels by.
type LevelStat int

const (
	Max LevelStat = iota
	Sum
	Mean
)

type levelAgg struct {
	name   string
	first  int // first-appearance index, the tie breaker
	max    float64
	sum    float64
	count  int
	hasVal bool
}

// ReorderLevels ranks the distinct values of categoryColumn by a
// statistic of valueColumn and returns them as an explicit ordered
// list for chart legends and series order. The table is not modified;
// ties keep first-appearance order. Levels whose rows carry no value
// sort after all ranked levels, in appearance order.
func ReorderLevels(t *Table, categoryColumn, valueColumn string, stat LevelStat, descending bool) ([]string, error) {
	ci, ok := t.ColumnIndex(categoryColumn)
	if !ok {
		return nil, &SchemaError{Column: categoryColumn}
	}
	vi, ok := t.ColumnIndex(valueColumn)
	if !ok {
		return nil, &SchemaError{Column: valueColumn}
	}

	byName := map[string]*levelAgg{}
	order := []*levelAgg{}
	for _, row := range t.rows {
		cv := row[ci]
		if cv.IsMissing() {
			continue
		}
		name := cv.Str()
		agg, ok := byName[name]
		if !ok {
			agg = &levelAgg{name: name, first: len(order)}
			byName[name] = agg
			order = append(order, agg)
		}
		vv := row[vi]
		if vv.IsMissing() {
			continue
		}
		if vv.Kind() != KindNumber {
			return nil, &SchemaError{Column: valueColumn, Reason: "is not numeric"}
		}
		n := vv.Num()
		if !agg.hasVal || n > agg.max {
			agg.max = n
		}
		agg.sum += n
		agg.count++
		agg.hasVal = true
	}

	value := func(a *levelAgg) float64 {
		switch stat {
		case Sum:
			return a.sum
		case Mean:
			return a.sum / float64(a.count)
		}
		return a.max
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.hasVal != b.hasVal {
			return a.hasVal
		}
		if !a.hasVal {
			return a.first < b.first
		}
		av, bv := value(a), value(b)
		if av == bv {
			return a.first < b.first
		}
		if descending {
			return av > bv
		}
		return av < bv
	})

	levels := make([]string, len(order))
	for i, a := range order {
		levels[i] = a.name
	}
	return levels, nil
}
