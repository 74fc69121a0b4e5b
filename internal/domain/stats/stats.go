// Package stats computes descriptive statistics over generated employees.
package stats

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/okian/staffgen/internal/domain/model"
)

// Age returns the calendar age at now of someone born at birth. The birthday
// counts as reached on its calendar day in now's location.
func Age(birth, now time.Time) int {
	birth = birth.In(now.Location())
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// Median returns the middle of values, or the mean of the two middle values
// for an even count. ok is false for an empty slice. values is not modified.
func Median(values []float64) (median float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}

// RoundToOneDecimal rounds half away from zero at the tenths.
func RoundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// CountByWorkload counts employees whose workload equals tier exactly.
func CountByWorkload(employees []model.Employee, tier int) int {
	n := 0
	for _, e := range employees {
		if e.Workload == tier {
			n++
		}
	}
	return n
}

// SortByWorkload returns a copy of employees ordered by ascending workload.
// Employees with equal workload keep their relative order.
func SortByWorkload(employees []model.Employee) []model.Employee {
	sorted := make([]model.Employee, len(employees))
	copy(sorted, employees)
	slices.SortStableFunc(sorted, func(a, b model.Employee) int {
		return cmp.Compare(a.Workload, b.Workload)
	})
	return sorted
}

// Summarize computes the statistics of employees at now. It does not modify employees.
func Summarize(employees []model.Employee, now time.Time) model.Statistics {
	s := model.Statistics{
		Total:                     len(employees),
		Workload10:                CountByWorkload(employees, model.Workload10),
		Workload20:                CountByWorkload(employees, model.Workload20),
		Workload30:                CountByWorkload(employees, model.Workload30),
		Workload40:                CountByWorkload(employees, model.Workload40),
		EmployeesSortedByWorkload: SortByWorkload(employees),
	}
	if len(employees) == 0 {
		return s
	}

	ages := make([]float64, len(employees))
	workloads := make([]float64, len(employees))
	minAge, maxAge := math.MaxInt, math.MinInt
	var ageSum float64
	var femaleWorkload, females int
	for i, e := range employees {
		age := Age(e.DateOfBirth, now)
		ages[i] = float64(age)
		workloads[i] = float64(e.Workload)
		ageSum += float64(age)
		minAge = min(minAge, age)
		maxAge = max(maxAge, age)
		if e.Gender == model.GenderFemale {
			femaleWorkload += e.Workload
			females++
		}
	}

	s.AverageAge = RoundToOneDecimal(ageSum / float64(len(employees)))
	s.MinAge = &minAge
	s.MaxAge = &maxAge
	medianAge, _ := Median(ages)
	medianWorkload, _ := Median(workloads)
	s.MedianAge = &medianAge
	s.MedianWorkload = &medianWorkload
	if females > 0 {
		s.AverageFemaleWorkload = RoundToOneDecimal(float64(femaleWorkload) / float64(females))
	}
	return s
}
