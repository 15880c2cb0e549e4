package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// runCmd executes the root command with args, failing the test on error.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	resetFlags(t)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

// resetFlags clears sticky Changed state so config fallbacks behave the same
// across invocations within one test binary.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
		})
	}
}

func TestCLI_RenderDefaultDataToHTML(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	out := filepath.Join(t.TempDir(), "chart.html")
	runCmd(t, "render", "--html", out)
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read html: %v", err)
	}
	doc := string(b)
	if !strings.Contains(doc, "Plotly.newPlot") {
		t.Fatalf("html output missing chart bootstrap")
	}
	for _, dept := range []string{"IT", "Finance", "Customer Service"} {
		if !strings.Contains(doc, dept) {
			t.Fatalf("html output missing department %q", dept)
		}
	}
}

func TestCLI_RenderPNG(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	out := filepath.Join(t.TempDir(), "chart.png")
	runCmd(t, "render", "--out", out, "--html", filepath.Join(t.TempDir(), "chart.html"))
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	if len(b) < 8 || string(b[1:4]) != "PNG" {
		t.Fatalf("output is not a png")
	}
}

func TestCLI_SimulateWritesViolinAndSamples(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	dir := t.TempDir()
	html := filepath.Join(dir, "violin.html")
	csvOut := filepath.Join(dir, "samples.csv")
	runCmd(t, "simulate", "--samples", "50", "--seed", "42", "--html", html, "--csv", csvOut)

	b, err := os.ReadFile(html)
	if err != nil {
		t.Fatalf("read violin html: %v", err)
	}
	if !strings.Contains(string(b), `"type":"violin"`) {
		t.Fatalf("violin html missing violin trace")
	}
	s, err := os.ReadFile(csvOut)
	if err != nil {
		t.Fatalf("read samples csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(s)), "\n")
	if lines[0] != "Department,Salary" {
		t.Fatalf("unexpected sample header %q", lines[0])
	}
	if len(lines) != 1+9*50 {
		t.Fatalf("expected %d sample rows, got %d", 9*50, len(lines)-1)
	}
}

func TestCLI_SimulateInsufficientData(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	// All rows lack a usable range, so the command warns and exits cleanly
	// without writing a document.
	csvPath := filepath.Join(t.TempDir(), "thin.csv")
	content := "Department,Average_Salary,Min_Salary,Max_Salary\nIT,100,,\nHR,90,90,90\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	html := filepath.Join(t.TempDir(), "violin.html")
	runCmd(t, "simulate", csvPath, "--html", html)
	if _, err := os.Stat(html); !os.IsNotExist(err) {
		t.Fatalf("no html should be written when no rows qualify")
	}
}

func TestCLI_RenderRejectsBadSchema(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	csvPath := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(csvPath, []byte("dept,avg\nIT,1\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	resetFlags(t)
	rootCmd.SetArgs([]string{"render", csvPath, "--html", filepath.Join(t.TempDir(), "x.html")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected schema error")
	}
}

func TestCLI_SummaryRuns(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	runCmd(t, "summary", "--sort", "department")
}
