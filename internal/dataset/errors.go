package dataset

import (
	"fmt"
	"strings"
)

// SchemaError indicates the required column set is not a subset of the
// table's columns. It ends the current render cycle but is not process-fatal;
// the next load may supply a corrected file.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("csv must contain columns: %s (missing: %s)",
		strings.Join(RequiredColumns, ", "), strings.Join(e.Missing, ", "))
}

// ParseError indicates the CSV itself is structurally malformed. Individual
// non-numeric cells never produce a ParseError; they become missing values.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse csv: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
