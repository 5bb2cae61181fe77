package table

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// From converts an arbitrary value into a table.
//
// Accepted values are *Table, any gonum mat.Matrix, and nested slices or
// arrays of Go integer or floating-point values. Non-numeric elements yield
// ErrType; values that are not rectangular and 2-dimensional yield ErrShape.
func From(v any) (*Table, error) {
	data, shape, err := Flatten(v)
	if err != nil {
		return nil, err
	}
	return FromFlat(data, shape)
}

// FromFlat creates a table from row-major data and its shape.
// The shape must have exactly two non-zero dimensions.
func FromFlat(data []float64, shape []int) (*Table, error) {
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrShape, len(shape))
	}
	return New(shape[0], shape[1], data)
}

// Flatten walks v and returns its numeric values in row-major order along
// with its shape. A scalar has an empty shape.
func Flatten(v any) ([]float64, []int, error) {
	switch m := v.(type) {
	case *Table:
		if m == nil {
			return nil, nil, fmt.Errorf("%w: nil table", ErrType)
		}
		r, c := m.Dims()
		return m.Flat(), []int{r, c}, nil
	case mat.Matrix:
		if rv := reflect.ValueOf(m); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, nil, fmt.Errorf("%w: nil matrix", ErrType)
		}
		r, c := m.Dims()
		data := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data = append(data, m.At(i, j))
			}
		}
		return data, []int{r, c}, nil
	}

	w := &walker{leafDepth: -1}
	if err := w.walk(reflect.ValueOf(v), 0); err != nil {
		return nil, nil, err
	}
	return w.data, w.shape, nil
}

type walker struct {
	data      []float64
	shape     []int
	leafDepth int
}

func (w *walker) walk(rv reflect.Value, depth int) error {
	if !rv.IsValid() {
		return fmt.Errorf("%w: nil value", ErrType)
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return fmt.Errorf("%w: nil value", ErrType)
		}
		return w.walk(rv.Elem(), depth)

	case reflect.Slice, reflect.Array:
		n := rv.Len()
		switch {
		case w.leafDepth >= 0 && depth >= w.leafDepth:
			return fmt.Errorf("%w: nested array where a value was expected", ErrShape)
		case depth < len(w.shape):
			if w.shape[depth] != n {
				return fmt.Errorf("%w: ragged array at depth %d (%d != %d)", ErrShape, depth, n, w.shape[depth])
			}
		default:
			w.shape = append(w.shape, n)
		}
		for i := 0; i < n; i++ {
			if err := w.walk(rv.Index(i), depth+1); err != nil {
				return err
			}
		}
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return w.leaf(float64(rv.Int()), depth)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return w.leaf(float64(rv.Uint()), depth)
	case reflect.Float32, reflect.Float64:
		return w.leaf(rv.Float(), depth)
	}

	return fmt.Errorf("%w: element of type %s", ErrType, rv.Type())
}

func (w *walker) leaf(v float64, depth int) error {
	if w.leafDepth < 0 {
		if depth != len(w.shape) {
			return fmt.Errorf("%w: value found at depth %d", ErrShape, depth)
		}
		w.leafDepth = depth
	} else if depth != w.leafDepth {
		return fmt.Errorf("%w: value found at depth %d", ErrShape, depth)
	}
	w.data = append(w.data, v)
	return nil
}
