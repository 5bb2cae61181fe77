// Package stats provides daily summaries and normalisation for inflammation tables.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/inflammation/table"
)

// The reductions take a *table.Table, so non-numeric input is rejected
// earlier with table.ErrType by table.From or the CSV loader.

// DailyMean calculates the mean measurement across patients for each day.
func DailyMean(t *table.Table) []float64 {
	return reduceDays(t, func(col []float64) float64 {
		return stat.Mean(col, nil)
	})
}

// DailyMin calculates the minimum measurement across patients for each day.
func DailyMin(t *table.Table) []float64 {
	return reduceDays(t, func(col []float64) float64 {
		if floats.HasNaN(col) {
			return math.NaN()
		}
		return floats.Min(col)
	})
}

// DailyMax calculates the maximum measurement across patients for each day.
func DailyMax(t *table.Table) []float64 {
	return reduceDays(t, func(col []float64) float64 {
		if floats.HasNaN(col) {
			return math.NaN()
		}
		return floats.Max(col)
	})
}

// DailyStd calculates the population standard deviation (divided by N)
// across patients for each day.
func DailyStd(t *table.Table) []float64 {
	return reduceDays(t, popStdDev)
}

// reduceDays applies fn to every column of t.
func reduceDays(t *table.Table, fn func([]float64) float64) []float64 {
	result := make([]float64, t.Days())
	for j := range result {
		result[j] = fn(t.Col(j))
	}
	return result
}

func popStdDev(xs []float64) float64 {
	// gonum divides by N-1 before rescaling, which is undefined for one value.
	if len(xs) == 1 {
		if math.IsNaN(xs[0]) || math.IsInf(xs[0], 0) {
			return math.NaN()
		}
		return 0
	}
	return stat.PopStdDev(xs, nil)
}
