package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sartorproj/inflammation/internal/config"
)

func writeData(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "inflammation-01.csv")
	if err := os.WriteFile(filename, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write data: %v", err)
	}
	return filename
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:  "error",
		CSV:       config.CSVConfig{Delimiter: ','},
		Precision: 2,
	}
}

func TestRunText(t *testing.T) {
	filename := writeData(t, "1,2,3\n4,5,6\n7,8,9\n")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-normalise", "-describe", "-patient", "1", "-names", "Alice,Bob", filename}, testConfig(), &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v (stderr: %s)", err, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"3 patients x 3 days",
		"4.00", // day 0 mean
		"patient 1 (Bob)",
		"normalised:",
		"0.33 0.67 1.00",
		"median",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRunJSON(t *testing.T) {
	filename := writeData(t, "0,NaN\n2,4\n")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-format", "json", "-normalise", filename}, testConfig(), &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var out struct {
		Patients   int          `json:"patients"`
		Mean       []*float64   `json:"mean"`
		Normalised [][]*float64 `json:"normalised"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON %q: %v", stdout.String(), err)
	}

	if out.Patients != 2 {
		t.Errorf("Expected 2 patients, got %d", out.Patients)
	}
	if out.Mean[0] == nil || *out.Mean[0] != 1 {
		t.Errorf("Expected day 0 mean 1, got %v", out.Mean[0])
	}
	if out.Mean[1] != nil {
		t.Errorf("Expected missing day 1 mean to encode as null, got %v", *out.Mean[1])
	}
	if *out.Normalised[0][1] != 0 || *out.Normalised[1][0] != 0.5 {
		t.Errorf("Unexpected normalised table %v", out.Normalised)
	}
}

func TestRunCSV(t *testing.T) {
	filename := writeData(t, "1;3\n3;5\n")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-format", "csv", "-delimiter", ";", filename}, testConfig(), &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %q", stdout.String())
	}
	if lines[0] != "file,day,mean,min,max,std" {
		t.Errorf("Unexpected header %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], ",1,4.00,3.00,5.00,1.00") {
		t.Errorf("Unexpected row %q", lines[2])
	}
}

func TestRunErrors(t *testing.T) {
	negative := writeData(t, "1,-2\n")
	text := writeData(t, "Hello,there\n")

	tests := []struct {
		name string
		args []string
	}{
		{"no files", nil},
		{"bad format", []string{"-format", "xml", text}},
		{"bad delimiter", []string{"-delimiter", "ab", text}},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.csv")}},
		{"text data", []string{text}},
		{"negative normalise", []string{"-normalise", negative}},
		{"patient out of range", []string{"-patient", "5", negative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, testConfig(), &stdout, &stderr); err == nil {
				t.Errorf("Expected an error, got output %q", stdout.String())
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-version"}, testConfig(), &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout.String(), version) {
		t.Errorf("Expected version in output, got %q", stdout.String())
	}
}
