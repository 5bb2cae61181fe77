package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/inflammation/table"
)

func assertVector(t *testing.T, name string, got, expected []float64, tol float64) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: expected %d values, got %d", name, len(expected), len(got))
	}
	for i := range expected {
		if math.IsNaN(expected[i]) {
			if !math.IsNaN(got[i]) {
				t.Errorf("%s[%d]: expected NaN, got %f", name, i, got[i])
			}
			continue
		}
		if math.Abs(got[i]-expected[i]) > tol {
			t.Errorf("%s[%d]: expected %f, got %f", name, i, expected[i], got[i])
		}
	}
}

func TestDailyMean(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]float64
		expected []float64
	}{
		{"zeros", [][]float64{{0, 0}, {0, 0}, {0, 0}}, []float64{0, 0}},
		{"positive integers", [][]float64{{1, 2}, {3, 4}, {5, 6}}, []float64{3, 4}},
		{"single patient", [][]float64{{2, 7, 1}}, []float64{2, 7, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DailyMean(table.MustFromRows(tt.rows))
			assertVector(t, "DailyMean", result, tt.expected, 1e-12)
		})
	}
}

func TestDailyMin(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]float64
		expected []float64
	}{
		{"integers", [][]float64{{2, 5}, {4, 7}, {6, 9}}, []float64{2, 5}},
		{"ascending", [][]float64{{1, 2}, {3, 4}, {5, 6}}, []float64{1, 2}},
		{"unordered", [][]float64{{4, 1}, {0.5, 7}, {6, 3}}, []float64{0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DailyMin(table.MustFromRows(tt.rows))
			assertVector(t, "DailyMin", result, tt.expected, 0)
		})
	}
}

func TestDailyMax(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]float64
		expected []float64
	}{
		{"integers", [][]float64{{2, 5}, {4, 7}, {6, 9}}, []float64{6, 9}},
		{"ascending", [][]float64{{1, 2}, {3, 4}, {5, 6}}, []float64{5, 6}},
		{"unordered", [][]float64{{4, 1}, {0.5, 7}, {6, 3}}, []float64{6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DailyMax(table.MustFromRows(tt.rows))
			assertVector(t, "DailyMax", result, tt.expected, 0)
		})
	}
}

func TestDailyStd(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]float64
		expected []float64
	}{
		{"zeros", [][]float64{{0, 0}, {0, 0}, {0, 0}}, []float64{0, 0}},
		{"positive integers", [][]float64{{1, 2}, {3, 4}, {5, 6}}, []float64{1.632993161855452, 1.632993161855452}},
		{"single patient", [][]float64{{3, 9}}, []float64{0, 0}},
		{"two patients", [][]float64{{2, 0}, {4, 10}}, []float64{1, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DailyStd(table.MustFromRows(tt.rows))
			assertVector(t, "DailyStd", result, tt.expected, 1e-10)
		})
	}
}

func TestDailyResultLength(t *testing.T) {
	rows := make([][]float64, 4)
	for i := range rows {
		rows[i] = make([]float64, 40)
		for j := range rows[i] {
			rows[i][j] = float64((i + 1) * j % 7)
		}
	}
	tbl := table.MustFromRows(rows)

	reductions := map[string]func(*table.Table) []float64{
		"mean": DailyMean,
		"min":  DailyMin,
		"max":  DailyMax,
		"std":  DailyStd,
	}
	for name, fn := range reductions {
		if got := len(fn(tbl)); got != 40 {
			t.Errorf("%s: expected 40 values, got %d", name, got)
		}
	}
}

func TestDailyMissingPropagates(t *testing.T) {
	tbl := table.MustFromRows([][]float64{{1, math.NaN()}, {3, 4}})

	assertVector(t, "DailyMean", DailyMean(tbl), []float64{2, math.NaN()}, 1e-12)
	assertVector(t, "DailyMin", DailyMin(tbl), []float64{1, math.NaN()}, 0)
	assertVector(t, "DailyMax", DailyMax(tbl), []float64{3, math.NaN()}, 0)
	assertVector(t, "DailyStd", DailyStd(tbl), []float64{1, math.NaN()}, 1e-12)
}

func TestDailyDoesNotModifyInput(t *testing.T) {
	rows := [][]float64{{5, 1}, {2, 8}}
	tbl := table.MustFromRows(rows)
	before := tbl.Copy()

	DailyMean(tbl)
	DailyMin(tbl)
	DailyMax(tbl)
	DailyStd(tbl)

	if !tbl.EqualApprox(before, 0) {
		t.Errorf("Input changed: %v", tbl.Rows())
	}
}

func TestDailyTextInput(t *testing.T) {
	// Text never reaches the reductions: coercion rejects it.
	_, err := table.From([][]string{{"Hello", "there"}, {"General", "Kenobi"}})
	if !errors.Is(err, table.ErrType) {
		t.Errorf("Expected table.ErrType, got %v", err)
	}
}
