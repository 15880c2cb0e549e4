package simulate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KaramelBytes/payscope-cli/internal/dataset"
)

func fv(f float64) *float64 { return &f }

func TestRunDeterministic(t *testing.T) {
	tbl, err := dataset.Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a, err := Run(tbl, 300, 42)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := Run(tbl, 300, 42)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(a.Rows) != 9*300 {
		t.Fatalf("expected %d samples, got %d", 9*300, len(a.Rows))
	}
	for i := range a.Rows {
		if a.Rows[i] != b.Rows[i] {
			t.Fatalf("sample %d differs between identical runs: %v vs %v", i, a.Rows[i], b.Rows[i])
		}
	}
}

func TestRunSeedChangesOutput(t *testing.T) {
	tbl, _ := dataset.Load(nil)
	a, _ := Run(tbl, 50, 1)
	b, _ := Run(tbl, 50, 2)
	same := true
	for i := range a.Rows {
		if a.Rows[i] != b.Rows[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced identical samples")
	}
}

func TestRunSamplesWithinBounds(t *testing.T) {
	tbl := &dataset.Table{Records: []dataset.Record{
		{Department: "IT", Min: fv(100), Average: fv(150), Max: fv(400)},
	}}
	s, err := Run(tbl, 500, 7)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, r := range s.Rows {
		if r.Salary < 100 || r.Salary > 400 {
			t.Fatalf("sample %v outside [100,400]", r.Salary)
		}
	}
}

func TestRunSkipsUnqualifiedRows(t *testing.T) {
	tbl := &dataset.Table{Records: []dataset.Record{
		{Department: "NoMin", Average: fv(10), Max: fv(20)},
		{Department: "MinEqMax", Min: fv(10), Average: fv(10), Max: fv(10)},
		{Department: "MinAboveMax", Min: fv(30), Average: fv(20), Max: fv(10)},
		{Department: "ModeOutside", Min: fv(10), Average: fv(50), Max: fv(20)},
		{Department: "OK", Min: fv(10), Average: fv(15), Max: fv(20)},
	}}
	s, err := Run(tbl, 10, 42)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(s.Rows) != 10 {
		t.Fatalf("expected only the qualifying row to produce samples, got %d rows", len(s.Rows))
	}
	for _, r := range s.Rows {
		if r.Department != "OK" {
			t.Fatalf("unexpected department %q in samples", r.Department)
		}
	}
}

func TestRunEmptyResultKeepsColumns(t *testing.T) {
	tbl := &dataset.Table{Records: []dataset.Record{
		{Department: "A"},
	}}
	s, err := Run(tbl, 100, 42)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !s.Empty() || len(s.Rows) != 0 {
		t.Fatalf("expected empty sample table")
	}
	cols := s.Columns()
	if cols[0] != "Department" || cols[1] != "Salary" {
		t.Fatalf("unexpected columns: %v", cols)
	}
	var buf bytes.Buffer
	if err := s.WriteCSV(&buf); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "Department,Salary" {
		t.Fatalf("empty table must still emit its header, got %q", buf.String())
	}
}

func TestRunRejectsBadSampleCount(t *testing.T) {
	tbl, _ := dataset.Load(nil)
	if _, err := Run(tbl, 0, 42); err == nil {
		t.Fatalf("expected error for samplesPerDept < 1")
	}
}

func TestWriteCSVLongForm(t *testing.T) {
	tbl := &dataset.Table{Records: []dataset.Record{
		{Department: "IT", Min: fv(1), Average: fv(2), Max: fv(3)},
	}}
	s, _ := Run(tbl, 3, 42)
	var buf bytes.Buffer
	if err := s.WriteCSV(&buf); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "Department,Salary" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "IT,") {
			t.Fatalf("unexpected row %q", l)
		}
	}
}
