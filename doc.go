// Package inflammation computes daily summary statistics for patient
// inflammation data.
//
// Data is held in a table with one row per patient and one column per day.
// The statistics engine reduces each day across patients and rescales each
// patient against their own peak reading.
//
// # Quick Start
//
// Load a table and summarise it:
//
//	t, err := table.LoadCSV("inflammation-01.csv", nil)
//	mean := stats.DailyMean(t)
//	std := stats.DailyStd(t)
//
// Normalise each patient by their peak:
//
//	normalised, err := stats.PatientNormalise(t)
//
// # Packages
//
// The module is organized into the following packages:
//
//   - table: the patient-by-day table, input coercion, and CSV loading
//   - stats: daily mean/min/max/std, patient normalisation, distribution summaries
//   - models: patient, observation and doctor records
//
// The inflammation command in cmd/inflammation prints these statistics
// for one or more CSV files.
package inflammation
