// Package table provides the patient-by-day measurement table.
package table

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrType is returned when input is not a numeric array.
	ErrType = errors.New("type error: not a numeric array")
	// ErrShape is returned when input is not a rectangular 2-dimensional array.
	ErrShape = errors.New("shape error: expected 2 dimensions")
	// ErrEmpty is returned when a source holds no rows.
	ErrEmpty = errors.New("no data rows found")
)

// Table represents measurements with one row per patient and one column per day.
type Table struct {
	m    *mat.Dense
	Name string
}

// New creates a table with the given dimensions from row-major data.
// The data slice is copied.
func New(rows, cols int, data []float64) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values do not fill %dx%d", ErrShape, len(data), rows, cols)
	}
	values := make([]float64, len(data))
	copy(values, data)
	return &Table{m: mat.NewDense(rows, cols, values)}, nil
}

// FromRows creates a table from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrShape, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return New(len(rows), cols, data)
}

// MustFromRows is like FromRows but panics on error.
// It is intended for fixed tables in tests and examples.
func MustFromRows(rows [][]float64) *Table {
	t, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMatrix copies any gonum matrix into a new table.
func FromMatrix(m mat.Matrix) (*Table, error) {
	if d, ok := m.(*mat.Dense); m == nil || (ok && d == nil) {
		return nil, fmt.Errorf("%w: nil matrix", ErrType)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrShape, r, c)
	}
	return &Table{m: mat.DenseCopyOf(m)}, nil
}

// Dims returns the number of patients (rows) and days (columns).
func (t *Table) Dims() (patients, days int) {
	return t.m.Dims()
}

// Patients returns the number of rows.
func (t *Table) Patients() int {
	r, _ := t.m.Dims()
	return r
}

// Days returns the number of columns.
func (t *Table) Days() int {
	_, c := t.m.Dims()
	return c
}

// At returns the value for patient i on day j.
func (t *Table) At(i, j int) float64 {
	return t.m.At(i, j)
}

// Row returns a copy of patient i's measurements.
func (t *Table) Row(i int) []float64 {
	return mat.Row(nil, i, t.m)
}

// Col returns a copy of every patient's measurement on day j.
func (t *Table) Col(j int) []float64 {
	return mat.Col(nil, j, t.m)
}

// Rows returns a copy of the table as a slice of rows.
func (t *Table) Rows() [][]float64 {
	r, _ := t.m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Flat returns a copy of the values in row-major order.
func (t *Table) Flat() []float64 {
	r, c := t.m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, t.m.RawRowView(i)...)
	}
	return data
}

// Matrix returns the table as a gonum matrix.
// Callers must treat it as read-only; use Copy before modifying.
func (t *Table) Matrix() mat.Matrix {
	return t.m
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	return &Table{
		m:    mat.DenseCopyOf(t.m),
		Name: t.Name,
	}
}

// EqualApprox reports whether both tables have the same shape and every
// pair of values differs by at most tol. NaN values only match NaN.
func (t *Table) EqualApprox(other *Table, tol float64) bool {
	r1, c1 := t.Dims()
	r2, c2 := other.Dims()
	if r1 != r2 || c1 != c2 {
		return false
	}
	for i := 0; i < r1; i++ {
		for j := 0; j < c1; j++ {
			a, b := t.m.At(i, j), other.m.At(i, j)
			if math.IsNaN(a) || math.IsNaN(b) {
				if math.IsNaN(a) != math.IsNaN(b) {
					return false
				}
				continue
			}
			if a == b {
				continue
			}
			if math.Abs(a-b) > tol {
				return false
			}
		}
	}
	return true
}

// String formats the table with one patient per line.
func (t *Table) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.m, mat.Squeeze()))
}
