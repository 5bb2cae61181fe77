// Package models holds the patient, observation and doctor records that
// accompany an inflammation table.
package models

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Person is anyone known to the study.
type Person struct {
	Name string `json:"name"`
}

// Observation is one inflammation reading taken on a given day.
type Observation struct {
	Day   int     `json:"day"`
	Value float64 `json:"value"`
}

// Patient is a person with a flat list of observations.
type Patient struct {
	ID uuid.UUID `json:"id"`
	Person
	Observations []Observation `json:"observations"`
}

// NewPatient creates a patient with a fresh ID and no observations.
func NewPatient(name string) *Patient {
	return &Patient{
		ID:     uuid.New(),
		Person: Person{Name: name},
	}
}

// AddObservation records a reading on the day after the latest one,
// or on day 0 for the first reading.
func (p *Patient) AddObservation(value float64) Observation {
	day := 0
	if n := len(p.Observations); n > 0 {
		day = p.Observations[n-1].Day + 1
	}
	return p.AddObservationAt(day, value)
}

// AddObservationAt records a reading on the given day.
// Observations are kept ordered by day.
func (p *Patient) AddObservationAt(day int, value float64) Observation {
	obs := Observation{Day: day, Value: value}
	idx := sort.Search(len(p.Observations), func(i int) bool {
		return p.Observations[i].Day > day
	})
	p.Observations = append(p.Observations, Observation{})
	copy(p.Observations[idx+1:], p.Observations[idx:])
	p.Observations[idx] = obs
	return obs
}

// Values returns the observation values in day order.
func (p *Patient) Values() []float64 {
	values := make([]float64, len(p.Observations))
	for i, o := range p.Observations {
		values[i] = o.Value
	}
	return values
}

func (p *Patient) String() string {
	return fmt.Sprintf("%s (%d observations)", p.Name, len(p.Observations))
}

// Doctor is a person responsible for a roster of patients.
type Doctor struct {
	ID uuid.UUID `json:"id"`
	Person
	Patients []*Patient `json:"patients"`
}

// NewDoctor creates a doctor with a fresh ID and an empty roster.
func NewDoctor(name string) *Doctor {
	return &Doctor{
		ID:     uuid.New(),
		Person: Person{Name: name},
	}
}

// AddPatient adds p to the roster. A patient whose name is already on the
// roster is not added again; the existing record is returned instead.
func (d *Doctor) AddPatient(p *Patient) *Patient {
	if existing := d.Patient(p.Name); existing != nil {
		return existing
	}
	d.Patients = append(d.Patients, p)
	return p
}

// Patient returns the patient with the given name, or nil.
func (d *Doctor) Patient(name string) *Patient {
	for _, p := range d.Patients {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (d *Doctor) String() string {
	return fmt.Sprintf("Dr %s (%d patients)", d.Name, len(d.Patients))
}
