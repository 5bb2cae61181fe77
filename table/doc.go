// Package table provides the two-dimensional measurement table used across
// the inflammation module.
//
// A Table holds one row per patient and one column per day. It is backed by
// a gonum dense matrix and is never modified by the statistics functions
// that consume it.
//
// # Creating a Table
//
// Build a table from rows:
//
//	t, err := table.FromRows([][]float64{
//	    {0, 1, 3, 2},
//	    {0, 2, 4, 1},
//	})
//
// Or coerce an arbitrary value, which reports non-numeric elements with
// ErrType and anything that is not a rectangular 2-D array with ErrShape:
//
//	t, err := table.From([][]int{{1, 2}, {3, 4}})
//	_, err = table.From([][]string{{"a"}})   // errors.Is(err, table.ErrType)
//	_, err = table.From(10)                  // errors.Is(err, table.ErrShape)
//
// # Loading from CSV
//
// Inflammation files have no header, one row per patient and one comma
// separated value per day:
//
//	t, err := table.LoadCSV("inflammation-01.csv", nil)
//
// Missing fields ("", "NA", "NaN", "null") are kept as NaN so that every
// column stays aligned with its day:
//
//	opts := table.DefaultCSVOptions()
//	opts.HasHeader = true
//	t, err := table.LoadCSVFromReader(reader, opts)
//
// # Accessing Values
//
//	patients, days := t.Dims()
//	firstPatient := t.Row(0)
//	dayThree := t.Col(2)
package table
