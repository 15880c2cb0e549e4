// Package dataset loads and prepares per-department salary summary tables.
//
// A table is an ordered sequence of records with a fixed required column set.
// Every operation returns a fresh table; nothing mutates in place, so the
// pipeline stays idempotent across re-invocation.
package dataset

import (
	"sort"
	"strings"
)

// Required column names, matched exactly after surrounding whitespace is
// trimmed from the header. Matching is case-sensitive.
const (
	ColDepartment = "Department"
	ColAverage    = "Average_Salary"
	ColMin        = "Min_Salary"
	ColMax        = "Max_Salary"
)

// RequiredColumns is the column set a table must carry to be renderable.
var RequiredColumns = []string{ColDepartment, ColAverage, ColMin, ColMax}

// Record is one department summary row. The salary fields are nil when the
// source cell was empty or not parseable as a number.
type Record struct {
	Department string
	Average    *float64
	Min        *float64
	Max        *float64
}

// Table is an ordered collection of records plus the trimmed header names of
// the CSV it came from. Extra columns are retained in Columns but never read.
type Table struct {
	Columns []string
	Records []Record
}

// SortKey selects the ordering applied by Sort.
type SortKey string

const (
	AverageDesc   SortKey = "avg-desc"
	AverageAsc    SortKey = "avg-asc"
	DepartmentAsc SortKey = "department"
)

// ParseSortKey maps a CLI/config string to a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case AverageDesc:
		return AverageDesc, true
	case AverageAsc:
		return AverageAsc, true
	case DepartmentAsc:
		return DepartmentAsc, true
	}
	return "", false
}

// Validate checks that the required column set is present. It returns a
// *SchemaError naming the missing columns; the caller must halt the current
// render cycle on failure.
func (t *Table) Validate() error {
	have := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		have[c] = true
	}
	var missing []string
	for _, c := range RequiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// Clean drops records without a department name.
func (t *Table) Clean() *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	for _, r := range t.Records {
		if r.Department == "" {
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out
}

// Filter restricts the table to the selected departments. An empty selection
// means "select all" and passes the table through unchanged; duplicate names
// in the selection are harmless (set semantics).
func (t *Table) Filter(selected []string) *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	if len(selected) == 0 {
		out.Records = append([]Record(nil), t.Records...)
		return out
	}
	want := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		want[s] = struct{}{}
	}
	for _, r := range t.Records {
		if _, ok := want[r.Department]; ok {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// Sort orders records by the given key. The sort is stable; ties keep their
// original row order, and records with a missing Average sort after all
// records that have one regardless of direction.
func (t *Table) Sort(key SortKey) *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Records: append([]Record(nil), t.Records...),
	}
	less := func(a, b Record) bool {
		switch key {
		case DepartmentAsc:
			return a.Department < b.Department
		case AverageAsc, AverageDesc:
			if a.Average == nil {
				return false
			}
			if b.Average == nil {
				return true
			}
			if key == AverageAsc {
				return *a.Average < *b.Average
			}
			return *a.Average > *b.Average
		}
		return false
	}
	sort.SliceStable(out.Records, func(i, j int) bool {
		return less(out.Records[i], out.Records[j])
	})
	return out
}

// Departments returns the department names in table order.
func (t *Table) Departments() []string {
	names := make([]string, 0, len(t.Records))
	for _, r := range t.Records {
		names = append(names, r.Department)
	}
	return names
}
