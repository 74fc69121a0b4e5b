// Package generator produces synthetic employee records.
package generator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/okian/staffgen/internal/domain/model"
	"github.com/okian/staffgen/internal/domain/names"
)

const (
	maleProbability     = 0.5
	cancelCheckInterval = 1024
)

// Hard limits applied to every request regardless of service configuration.
const (
	// MaxAge bounds both ends of the age range.
	MaxAge = 150
	// MaxCount bounds the number of employees in one batch.
	MaxCount = 1_000_000
)

// Source supplies uniform randomness.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// globalSource uses the top-level math/rand/v2 functions, which are safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() } //nolint:gosec // synthetic data
func (globalSource) IntN(n int) int   { return rand.IntN(n) }   //nolint:gosec // synthetic data

// Generator creates employee records from a GenerationRequest.
// It holds no mutable state of its own, so it is safe for concurrent use
// as long as its Source is.
type Generator struct {
	src Source
}

// New creates a Generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{src: globalSource{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Validate rejects requests the generator cannot honor.
func Validate(req model.GenerationRequest) error {
	if req.Count < 0 {
		return fmt.Errorf("%w: %w: must not be negative, got %d", ErrInvalidRequest, ErrInvalidCount, req.Count)
	}
	if req.Count > MaxCount {
		return fmt.Errorf("%w: %w: %d exceeds the limit of %d", ErrInvalidRequest, ErrInvalidCount, req.Count, MaxCount)
	}
	if req.Age.Min < 0 || req.Age.Max < 0 {
		return fmt.Errorf("%w: %w: bounds must not be negative, got [%d, %d]",
			ErrInvalidRequest, ErrInvalidAgeRange, req.Age.Min, req.Age.Max)
	}
	if req.Age.Min > MaxAge || req.Age.Max > MaxAge {
		return fmt.Errorf("%w: %w: bounds must not exceed %d, got [%d, %d]",
			ErrInvalidRequest, ErrInvalidAgeRange, MaxAge, req.Age.Min, req.Age.Max)
	}
	if req.Age.Min > req.Age.Max {
		return fmt.Errorf("%w: %w: min %d is greater than max %d",
			ErrInvalidRequest, ErrInvalidAgeRange, req.Age.Min, req.Age.Max)
	}
	return nil
}

// Generate returns exactly req.Count employees whose calendar age at now lies
// within req.Age.
func (g *Generator) Generate(ctx context.Context, req model.GenerationRequest, now time.Time) ([]model.Employee, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	oldest, youngest := BirthWindow(req.Age, now)
	employees := make([]model.Employee, req.Count)
	for i := range employees {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("generation cancelled after %d employees: %w", i, err)
			}
		}
		employees[i] = g.employee(oldest, youngest)
	}
	return employees, nil
}

// BirthWindow returns the earliest and latest birth instants for ages in r at now.
// Both are midnight of now's calendar day, shifted back by r.Max and r.Min years.
func BirthWindow(r model.AgeRange, now time.Time) (oldest, youngest time.Time) {
	y, m, d := now.Date()
	loc := now.Location()
	return anniversary(y-r.Max, m, d, loc), anniversary(y-r.Min, m, d, loc)
}

// anniversary returns midnight of m/d in year y, clamping Feb 29 to Feb 28 in
// common years so the result never rolls into the next month.
func anniversary(y int, m time.Month, d int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if t.Month() != m {
		t = time.Date(y, m+1, 0, 0, 0, 0, 0, loc)
	}
	return t
}

func (g *Generator) employee(oldest, youngest time.Time) model.Employee {
	gender := model.GenderFemale
	if g.src.Float64() < maleProbability {
		gender = model.GenderMale
	}
	pools := names.ForGender(gender)

	return model.Employee{
		Gender:      gender,
		FirstName:   pools.First.Pick(g.src.IntN),
		LastName:    pools.Last.Pick(g.src.IntN),
		DateOfBirth: g.birthDate(oldest, youngest),
		Workload:    model.WorkloadTiers[g.src.IntN(len(model.WorkloadTiers))],
	}
}

// birthDate samples uniformly in [oldest, youngest] with millisecond granularity.
func (g *Generator) birthDate(oldest, youngest time.Time) time.Time {
	from := oldest.UnixMilli()
	span := youngest.UnixMilli() - from
	offset := int64(g.src.Float64() * float64(span))
	return time.UnixMilli(from + offset).UTC()
}
