package models

import (
	"fmt"

	"github.com/sartorproj/inflammation/table"
)

// AttachNames pairs each table row with a name.
//
// The result has one patient per row or per name, whichever is more.
// Rows beyond the names get an empty name; names beyond the rows get a
// patient with no observations.
func AttachNames(t *table.Table, names []string) []*Patient {
	n := max(t.Patients(), len(names))

	patients := make([]*Patient, n)
	for i := range patients {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		p := NewPatient(name)
		if i < t.Patients() {
			for _, v := range t.Row(i) {
				p.AddObservation(v)
			}
		}
		patients[i] = p
	}
	return patients
}

// PatientsTable builds a table with one row per patient from the
// patients' observation values. Every patient must have the same number
// of observations.
func PatientsTable(patients []*Patient) (*table.Table, error) {
	if len(patients) == 0 {
		return nil, fmt.Errorf("%w: no patients", table.ErrShape)
	}

	rows := make([][]float64, len(patients))
	for i, p := range patients {
		rows[i] = p.Values()
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("%w: patient %q has %d observations, expected %d",
				table.ErrShape, p.Name, len(rows[i]), len(rows[0]))
		}
	}
	return table.FromRows(rows)
}
