package table

import (
	"strconv"
	"strings"

	"github.com/pivolan/go_utils"
)

// NormalizeSpec maps legacy source columns into the canonical schema.
// Keep lists canonical names in output order; Renames maps source header
// names to canonical names. Columns listed in NumberColumns and
// DateColumns are parsed from their string cells.
type NormalizeSpec struct {
	Renames       map[string]string
	Keep          []string
	NumberColumns []string
	DateColumns   []string
}

// Normalize selects and renames columns into the canonical schema and
// types numeric and date cells. An empty cell stays Missing; a non-empty
// cell that fails to parse is a ParseError, never silently dropped.
func Normalize(t *Table, spec NormalizeSpec) (*Table, error) {
	// canonical name -> source header; two sources renaming to the same
	// canonical column is ambiguous, not a coin toss
	sources := make(map[string]string, len(spec.Renames))
	for source, canonical := range spec.Renames {
		if prev, ok := sources[canonical]; ok {
			first, second := prev, source
			if second < first {
				first, second = second, first
			}
			return nil, &SchemaError{
				Column: canonical,
				Reason: "renamed from both " + strconv.Quote(first) + " and " + strconv.Quote(second),
			}
		}
		sources[canonical] = source
	}

	// canonical name -> source column index
	src := make([]int, len(spec.Keep))
	for i, keep := range spec.Keep {
		idx := -1
		if source, ok := sources[keep]; ok {
			if j, ok := t.ColumnIndex(source); ok {
				idx = j
			}
		}
		if idx < 0 {
			if j, ok := t.ColumnIndex(keep); ok {
				idx = j
			}
		}
		if idx < 0 {
			return nil, &SchemaError{Column: keep}
		}
		src[i] = idx
	}

	out := New(spec.Keep...)
	for _, row := range t.rows {
		cells := make(Row, len(spec.Keep))
		for i, keep := range spec.Keep {
			v := row[src[i]]
			if v.IsMissing() {
				cells[i] = Missing
				continue
			}
			switch {
			case go_utils.InArray(keep, spec.NumberColumns):
				if v.Kind() == KindNumber {
					cells[i] = v
					break
				}
				s := strings.TrimSpace(v.Str())
				if s == "" {
					cells[i] = Missing
					break
				}
				n, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return nil, &ParseError{Field: keep, Value: v.Str(), Reason: "not a number"}
				}
				cells[i] = Num(n)
			case go_utils.InArray(keep, spec.DateColumns):
				if v.Kind() == KindDate {
					cells[i] = v
					break
				}
				d, err := parseYearMonth(v.Str())
				if err != nil {
					return nil, err
				}
				cells[i] = Date(d)
			default:
				cells[i] = v
			}
		}
		out.rows = append(out.rows, cells)
	}
	return out, nil
}
