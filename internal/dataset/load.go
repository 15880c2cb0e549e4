package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// DefaultCSV is the built-in sample dataset used when no file is supplied.
const DefaultCSV = `Department,Average_Salary,Min_Salary,Max_Salary
IT,28560.182889,10544.19,115178.51
Finance,28055.533689,8987.86,101294.41
Logistics/Warehousing,27574.698600,9027.53,153451.58
Store Operations,27404.359873,8848.62,177873.61
Fresh Produce,26915.946969,8998.42,110475.60
Marketing,26796.816800,9736.23,65923.63
HR,26539.921733,8823.46,58951.29
Meat/Fish & Bakery,26535.722133,8867.88,116453.67
Customer Service,26244.393800,9449.99,50949.01
`

// Load parses a salary summary CSV into a Table. A nil reader loads the
// embedded default dataset. Header names are trimmed of surrounding
// whitespace; salary cells that do not parse as numbers become missing
// values rather than errors. Only structural CSV failures are fatal, and
// those surface as a *ParseError.
func Load(r io.Reader) (*Table, error) {
	if r == nil {
		r = strings.NewReader(DefaultCSV)
	}
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{}, nil
		}
		return nil, &ParseError{Err: err}
	}

	t := &Table{Columns: make([]string, len(header))}
	idx := map[string]int{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		t.Columns[i] = name
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Err: err}
		}
		row := Record{
			Department: cell(rec, idx, ColDepartment),
			Average:    numCell(rec, idx, ColAverage),
			Min:        numCell(rec, idx, ColMin),
			Max:        numCell(rec, idx, ColMax),
		}
		t.Records = append(t.Records, row)
	}
	return t, nil
}

func cell(rec []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func numCell(rec []string, idx map[string]int, col string) *float64 {
	v := strings.TrimSpace(cell(rec, idx, col))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
