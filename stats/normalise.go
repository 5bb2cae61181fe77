package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/inflammation/table"
)

// ErrNegative is returned when a table holds a reading below zero.
var ErrNegative = errors.New("value error: negative inflammation value")

// PatientNormalise rescales each patient's readings by that patient's
// maximum reading.
//
// NaN readings are ignored when finding the maximum. Any result that is NaN
// or negative is replaced with 0, so a row of zeros stays zero and a row
// whose maximum is +Inf maps its finite readings to 0.
func PatientNormalise(t *table.Table) (*table.Table, error) {
	patients, days := t.Dims()
	data := t.Flat()

	if idx := firstNegative(data); idx >= 0 {
		return nil, fmt.Errorf("%w: %g for patient %d on day %d", ErrNegative, data[idx], idx/days, idx%days)
	}

	for i := 0; i < patients; i++ {
		row := data[i*days : (i+1)*days]
		peak := nanMax(row)
		for j, v := range row {
			n := v / peak
			if math.IsNaN(n) || n <= 0 {
				n = 0
			}
			row[j] = n
		}
	}

	result, err := table.New(patients, days, data)
	if err != nil {
		return nil, err
	}
	result.Name = t.Name
	return result, nil
}

// Normalise validates an arbitrary value and normalises it with
// PatientNormalise.
//
// Checks run in a fixed order: every element must be numeric
// (table.ErrType), no element may be negative (ErrNegative), and the value
// must be a rectangular 2-dimensional array (table.ErrShape).
func Normalise(v any) (*table.Table, error) {
	data, shape, err := table.Flatten(v)
	if err != nil {
		return nil, err
	}

	if idx := firstNegative(data); idx >= 0 {
		return nil, fmt.Errorf("%w: %g at index %d", ErrNegative, data[idx], idx)
	}

	t, err := table.FromFlat(data, shape)
	if err != nil {
		return nil, err
	}

	return PatientNormalise(t)
}

// firstNegative returns the index of the first value below zero, or -1.
// NaN is not negative.
func firstNegative(data []float64) int {
	for i, v := range data {
		if v < 0 {
			return i
		}
	}
	return -1
}

// nanMax returns the largest non-NaN value, or NaN if every value is NaN.
func nanMax(xs []float64) float64 {
	peak := math.NaN()
	for _, v := range xs {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(peak) || v > peak {
			peak = v
		}
	}
	return peak
}
