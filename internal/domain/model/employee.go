// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ISOLayout renders timestamps as ISO-8601 in UTC with millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// Gender of a generated employee.
type Gender string

// Supported genders.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Workload tiers in weekly hours.
const (
	Workload10 = 10
	Workload20 = 20
	Workload30 = 30
	Workload40 = 40
)

// WorkloadTiers lists every workload the generator may assign.
var WorkloadTiers = [...]int{Workload10, Workload20, Workload30, Workload40}

// AgeRange bounds the calendar age of generated employees, inclusive.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// GenerationRequest describes how many employees to produce and how old they are.
type GenerationRequest struct {
	Count int      `json:"count"`
	Age   AgeRange `json:"age"`
}

// Employee is a single synthetic employee record.
type Employee struct {
	Gender      Gender    // male or female
	FirstName   string    // drawn from the gender-matched pool
	LastName    string    // drawn from the gender-matched pool
	DateOfBirth time.Time // UTC, millisecond precision
	Workload    int       // one of WorkloadTiers
}

type employeeJSON struct {
	Gender      Gender `json:"gender"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Workload    int    `json:"workload"`
}

// MarshalJSON encodes the record with an ISO-8601 dateOfBirth.
func (e Employee) MarshalJSON() ([]byte, error) {
	return json.Marshal(employeeJSON{
		Gender:      e.Gender,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		DateOfBirth: e.DateOfBirth.UTC().Format(ISOLayout),
		Workload:    e.Workload,
	})
}

// UnmarshalJSON decodes a record produced by MarshalJSON.
func (e *Employee) UnmarshalJSON(data []byte) error {
	var raw employeeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	dob, err := time.Parse(time.RFC3339Nano, raw.DateOfBirth)
	if err != nil {
		return fmt.Errorf("invalid dateOfBirth %q: %w", raw.DateOfBirth, err)
	}
	*e = Employee{
		Gender:      raw.Gender,
		FirstName:   raw.FirstName,
		LastName:    raw.LastName,
		DateOfBirth: dob.UTC(),
		Workload:    raw.Workload,
	}
	return nil
}

// Statistics summarizes a list of employees.
// MinAge, MaxAge, MedianAge and MedianWorkload are nil for an empty list.
type Statistics struct {
	Total                     int        `json:"total"`
	Workload10                int        `json:"workload10"`
	Workload20                int        `json:"workload20"`
	Workload30                int        `json:"workload30"`
	Workload40                int        `json:"workload40"`
	AverageAge                float64    `json:"averageAge"`
	MinAge                    *int       `json:"minAge"`
	MaxAge                    *int       `json:"maxAge"`
	MedianAge                 *float64   `json:"medianAge"`
	MedianWorkload            *float64   `json:"medianWorkload"`
	AverageFemaleWorkload     float64    `json:"averageFemaleWorkload"`
	EmployeesSortedByWorkload []Employee `json:"employeesSortedByWorkload"`
}

// Result is the combined output of one generation run.
type Result struct {
	RunID      string     `json:"-"`
	Employees  []Employee `json:"employees"`
	Statistics Statistics `json:"statistics"`
}
