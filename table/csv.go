package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Delimiter     rune     // Field delimiter (default: ',')
	HasHeader     bool     // Whether the first row holds column labels (default: false)
	SkipRows      int      // Number of rows to skip at start
	Comment       rune     // Lines starting with this rune are ignored (optional)
	MissingValues []string // Tokens read as NaN
}

// DefaultCSVOptions returns default options for inflammation data files.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter:     ',',
		MissingValues: []string{"", "NA", "NaN", "nan", "null"},
	}
}

// LoadCSV loads a table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	t.Name = filename
	return t, nil
}

// LoadCSVFromReader loads a table from an io.Reader.
// Every record is one patient; every field is one day.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.Comment = opts.Comment
	reader.TrimLeadingSpace = true
	// Row length is checked below so that ragged input reports ErrShape.
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmpty
			}
			return nil, err
		}
	}

	if opts.HasHeader {
		if _, err := reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmpty
			}
			return nil, err
		}
	}

	missing := make(map[string]bool, len(opts.MissingValues))
	for _, m := range opts.MissingValues {
		missing[m] = true
	}

	var (
		data []float64
		rows int
		cols = -1
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		if cols == -1 {
			cols = len(record)
		} else if len(record) != cols {
			return nil, fmt.Errorf("%w: line %d has %d fields, expected %d", ErrShape, line, len(record), cols)
		}

		for j, field := range record {
			field = strings.TrimSpace(strings.Trim(field, "\""))
			if missing[field] {
				data = append(data, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %q", ErrType, line, j+1, field)
			}
			data = append(data, v)
		}
		rows++
	}

	if rows == 0 {
		return nil, ErrEmpty
	}

	return New(rows, cols, data)
}

// SaveCSV writes a table to a CSV file.
func SaveCSV(t *Table, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(t, file)
}

// WriteCSV writes a table as comma separated rows without a header.
func WriteCSV(t *Table, w io.Writer) error {
	writer := bufio.NewWriter(w)

	patients, days := t.Dims()
	for i := 0; i < patients; i++ {
		for j := 0; j < days; j++ {
			if j > 0 {
				writer.WriteString(",")
			}
			writer.WriteString(strconv.FormatFloat(t.At(i, j), 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return writer.Flush()
}
