// Package stats provides the statistics engine for inflammation tables.
//
// Every function is pure: it reads a table and returns newly allocated
// results, leaving the input unchanged.
//
// # Daily Summaries
//
// Reduce each day (column) across all patients:
//
//	mean := stats.DailyMean(t)
//	min := stats.DailyMin(t)
//	max := stats.DailyMax(t)
//	std := stats.DailyStd(t)  // population standard deviation
//
// A missing (NaN) reading propagates into the summary for its day.
//
// # Patient Normalisation
//
// Rescale each patient's readings by their own peak value:
//
//	normalised, err := stats.PatientNormalise(t)
//	if errors.Is(err, stats.ErrNegative) {
//	    // a reading below zero was found
//	}
//
// Missing readings are ignored when finding the peak and become 0 in the
// result, so the output never holds NaN or Inf.
//
// Untyped input is validated first: non-numeric elements (table.ErrType),
// then negative readings (ErrNegative), then dimensionality
// (table.ErrShape):
//
//	normalised, err := stats.Normalise([][]int{{1, 2, 3}, {4, 5, 6}})
//
// # Distribution Summaries
//
// Describe each day with its quartiles, or a single patient:
//
//	for day, s := range stats.Describe(t) {
//	    fmt.Printf("day %d: median=%.2f iqr=%.2f\n", day, s.Median, s.Q3-s.Q1)
//	}
//	s, err := stats.PatientSummary(t, 0)
package stats
