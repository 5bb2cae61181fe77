package stats

import (
	"fmt"
	"math"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/sartorproj/inflammation/table"
)

// Summary describes the distribution of a set of readings.
// Missing (NaN) readings are counted but left out of every other field.
type Summary struct {
	N       int // Number of non-missing readings
	Missing int
	Mean    float64
	StdDev  float64 // Population standard deviation
	Min     float64
	Q1      float64
	Median  float64
	Q3      float64
	Max     float64
}

// IQR returns the interquartile range.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

// Describe summarises every day across all patients.
func Describe(t *table.Table) []Summary {
	result := make([]Summary, t.Days())
	for j := range result {
		result[j] = summarise(t.Col(j))
	}
	return result
}

// PatientSummary summarises the readings of a single patient.
func PatientSummary(t *table.Table, patient int) (Summary, error) {
	if patient < 0 || patient >= t.Patients() {
		return Summary{}, fmt.Errorf("patient %d out of range [0, %d)", patient, t.Patients())
	}
	return summarise(t.Row(patient)), nil
}

func summarise(xs []float64) Summary {
	valid := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}

	s := Summary{
		N:       len(valid),
		Missing: len(xs) - len(valid),
	}
	if len(valid) == 0 {
		nan := math.NaN()
		s.Mean, s.StdDev, s.Min, s.Q1, s.Median, s.Q3, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	sample := mstats.Sample{Xs: valid}
	sample.Sort()

	s.Min, s.Max = sample.Bounds()
	s.Mean = sample.Mean()
	s.StdDev = popStdDev(valid)
	s.Q1 = sample.Quantile(0.25)
	s.Median = sample.Quantile(0.5)
	s.Q3 = sample.Quantile(0.75)
	return s
}
