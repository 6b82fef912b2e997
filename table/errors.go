package table

import (
	"fmt"
	"time"
)

// SchemaError means an expected column is absent or has the wrong type.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("schema: column %q %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("schema: column %q not found", e.Column)
}

// ParseError means a date or numeric field is malformed. Malformed input
// aborts the run; it is never coerced to a default.
type ParseError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %s", e.Field, e.Value, e.Reason)
}

// OverlapError means a merge produced a period present in both inputs,
// which indicates a wrong cutoff.
type OverlapError struct {
	Date time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("merge overlap: date %s present in both tables", e.Date.Format("2006-01-02"))
}
