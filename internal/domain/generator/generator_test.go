package generator_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/okian/staffgen/internal/domain/generator"
	"github.com/okian/staffgen/internal/domain/model"
	"github.com/okian/staffgen/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

// scriptedSource replays fixed values in call order.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted index out of range")
	}
	return v
}

var now = time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC)

func seeded(seed uint64) *generator.Generator {
	return generator.New(generator.WithSource(rand.New(rand.NewPCG(seed, seed+1)))) //nolint:gosec // deterministic test source
}

func TestGenerator_Generate(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		gen := seeded(7)
		ctx := context.Background()

		Convey("When generating 500 employees aged 19 to 35", func() {
			req := model.GenerationRequest{Count: 500, Age: model.AgeRange{Min: 19, Max: 35}}
			employees, err := gen.Generate(ctx, req, now)

			Convey("Then it should return exactly the requested count", func() {
				So(err, ShouldBeNil)
				So(len(employees), ShouldEqual, 500)
			})

			Convey("Then every workload should be a known tier", func() {
				for _, e := range employees {
					So(e.Workload, ShouldBeIn, 10, 20, 30, 40)
				}
			})

			Convey("Then every age should lie within the range", func() {
				for _, e := range employees {
					age := stats.Age(e.DateOfBirth, now)
					So(age, ShouldBeBetweenOrEqual, 19, 35)
				}
			})

			Convey("Then names should match the gender", func() {
				for _, e := range employees {
					So(e.Gender, ShouldBeIn, model.GenderMale, model.GenderFemale)
					So(e.FirstName, ShouldNotBeEmpty)
					So(e.LastName, ShouldNotBeEmpty)
				}
			})

			Convey("Then birth dates should be UTC with millisecond precision", func() {
				for _, e := range employees {
					So(e.DateOfBirth.Location(), ShouldEqual, time.UTC)
					So(e.DateOfBirth.Nanosecond()%int(time.Millisecond), ShouldEqual, 0)
				}
			})

			Convey("Then both genders and all tiers should appear", func() {
				s := stats.Summarize(employees, now)
				So(s.Workload10, ShouldBeGreaterThan, 0)
				So(s.Workload20, ShouldBeGreaterThan, 0)
				So(s.Workload30, ShouldBeGreaterThan, 0)
				So(s.Workload40, ShouldBeGreaterThan, 0)
				females := 0
				for _, e := range employees {
					if e.Gender == model.GenderFemale {
						females++
					}
				}
				So(females, ShouldBeGreaterThan, 0)
				So(females, ShouldBeLessThan, 500)
			})
		})

		Convey("When the age range collapses to a single year", func() {
			req := model.GenerationRequest{Count: 3, Age: model.AgeRange{Min: 30, Max: 30}}
			employees, err := gen.Generate(ctx, req, now)

			Convey("Then every employee should be exactly that age", func() {
				So(err, ShouldBeNil)
				So(len(employees), ShouldEqual, 3)
				for _, e := range employees {
					So(stats.Age(e.DateOfBirth, now), ShouldEqual, 30)
				}
			})
		})

		Convey("When the age range is the oldest allowed", func() {
			req := model.GenerationRequest{Count: 50, Age: model.AgeRange{Min: 140, Max: generator.MaxAge}}
			employees, err := gen.Generate(ctx, req, now)
			So(err, ShouldBeNil)

			Convey("Then every age should lie within the range and round-trip through JSON", func() {
				for _, e := range employees {
					age := stats.Age(e.DateOfBirth, now)
					So(age, ShouldBeBetweenOrEqual, 140, generator.MaxAge)

					data, err := e.MarshalJSON()
					So(err, ShouldBeNil)
					var decoded model.Employee
					So(decoded.UnmarshalJSON(data), ShouldBeNil)
					So(decoded.DateOfBirth.Equal(e.DateOfBirth), ShouldBeTrue)
				}
			})
		})

		Convey("When the count is zero", func() {
			employees, err := gen.Generate(ctx, model.GenerationRequest{Age: model.AgeRange{Min: 20, Max: 30}}, now)

			Convey("Then it should return no employees", func() {
				So(err, ShouldBeNil)
				So(employees, ShouldBeEmpty)
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := gen.Generate(cctx, model.GenerationRequest{Count: 10, Age: model.AgeRange{Min: 20, Max: 30}}, now)

			Convey("Then it should stop with the context error", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})

	Convey("Given two generators with the same seed", t, func() {
		req := model.GenerationRequest{Count: 20, Age: model.AgeRange{Min: 18, Max: 65}}
		a, errA := seeded(99).Generate(context.Background(), req, now)
		b, errB := seeded(99).Generate(context.Background(), req, now)

		Convey("Then they should produce identical employees", func() {
			So(errA, ShouldBeNil)
			So(errB, ShouldBeNil)
			So(a, ShouldResemble, b)
		})
	})

	Convey("Given a scripted source", t, func() {
		src := &scriptedSource{
			floats: []float64{0.2, 0.0, 0.9, 0.5},
			ints:   []int{0, 1, 3, 3, 0, 1},
		}
		gen := generator.New(generator.WithSource(src))
		req := model.GenerationRequest{Count: 2, Age: model.AgeRange{Min: 20, Max: 40}}

		employees, err := gen.Generate(context.Background(), req, now)
		oldest, youngest := generator.BirthWindow(req.Age, now)

		Convey("Then the first employee should follow the script", func() {
			So(err, ShouldBeNil)
			first := employees[0]
			So(first.Gender, ShouldEqual, model.GenderMale)
			So(first.FirstName, ShouldEqual, "Matyáš")
			So(first.LastName, ShouldEqual, "Novotný")
			So(first.Workload, ShouldEqual, 40)
			So(first.DateOfBirth.Equal(oldest), ShouldBeTrue)
			So(stats.Age(first.DateOfBirth, now), ShouldEqual, 40)
		})

		Convey("Then the second employee should follow the script", func() {
			second := employees[1]
			So(second.Gender, ShouldEqual, model.GenderFemale)
			So(second.FirstName, ShouldEqual, "Anna")
			So(second.LastName, ShouldEqual, "Nováková")
			So(second.Workload, ShouldEqual, 20)
			mid := oldest.Add(youngest.Sub(oldest) / 2)
			So(second.DateOfBirth.Equal(mid), ShouldBeTrue)
		})
	})
}

func TestBirthWindow(t *testing.T) {
	Convey("Given a current moment", t, func() {
		Convey("When computing the window for ages 20 to 40", func() {
			oldest, youngest := generator.BirthWindow(model.AgeRange{Min: 20, Max: 40}, now)

			Convey("Then both ends should be midnight on today's month and day", func() {
				So(oldest, ShouldEqual, time.Date(1984, time.June, 15, 0, 0, 0, 0, time.UTC))
				So(youngest, ShouldEqual, time.Date(2004, time.June, 15, 0, 0, 0, 0, time.UTC))
				So(oldest.Before(youngest), ShouldBeTrue)
			})
		})

		Convey("When today is a leap day", func() {
			leap := time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC)
			oldest, youngest := generator.BirthWindow(model.AgeRange{Min: 30, Max: 31}, leap)

			Convey("Then common years should clamp to February 28", func() {
				So(oldest, ShouldEqual, time.Date(1993, time.February, 28, 0, 0, 0, 0, time.UTC))
				So(youngest, ShouldEqual, time.Date(1994, time.February, 28, 0, 0, 0, 0, time.UTC))
				So(stats.Age(oldest, leap), ShouldEqual, 31)
				So(stats.Age(youngest, leap), ShouldEqual, 30)
			})
		})

		Convey("When the clock is in a non-UTC zone", func() {
			loc := time.FixedZone("UTC+9", 9*3600)
			local := time.Date(2024, time.June, 16, 1, 0, 0, 0, loc)
			gen := seeded(3)
			employees, err := gen.Generate(context.Background(),
				model.GenerationRequest{Count: 200, Age: model.AgeRange{Min: 25, Max: 25}}, local)

			Convey("Then ages should still match in that zone", func() {
				So(err, ShouldBeNil)
				for _, e := range employees {
					So(stats.Age(e.DateOfBirth, local), ShouldEqual, 25)
				}
			})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given generation requests", t, func() {
		Convey("When the count is negative", func() {
			err := generator.Validate(model.GenerationRequest{Count: -1, Age: model.AgeRange{Min: 20, Max: 30}})

			Convey("Then it should be rejected as an invalid count", func() {
				So(errors.Is(err, generator.ErrInvalidRequest), ShouldBeTrue)
				So(errors.Is(err, generator.ErrInvalidCount), ShouldBeTrue)
			})
		})

		Convey("When min is greater than max", func() {
			err := generator.Validate(model.GenerationRequest{Count: 1, Age: model.AgeRange{Min: 40, Max: 30}})

			Convey("Then it should be rejected as an invalid age range", func() {
				So(errors.Is(err, generator.ErrInvalidRequest), ShouldBeTrue)
				So(errors.Is(err, generator.ErrInvalidAgeRange), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "min 40 is greater than max 30")
			})
		})

		Convey("When a bound is negative", func() {
			err := generator.Validate(model.GenerationRequest{Count: 1, Age: model.AgeRange{Min: -5, Max: 30}})
			So(errors.Is(err, generator.ErrInvalidAgeRange), ShouldBeTrue)
		})

		Convey("When the count exceeds the hard limit", func() {
			err := generator.Validate(model.GenerationRequest{Count: generator.MaxCount + 1, Age: model.AgeRange{Min: 20, Max: 30}})

			Convey("Then it should be rejected as an invalid count", func() {
				So(errors.Is(err, generator.ErrInvalidRequest), ShouldBeTrue)
				So(errors.Is(err, generator.ErrInvalidCount), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "exceeds the limit of 1000000")
			})
		})

		Convey("When the upper age bound is beyond the limit", func() {
			err := generator.Validate(model.GenerationRequest{Count: 5, Age: model.AgeRange{Min: 0, Max: 300_000_000}})

			Convey("Then it should be rejected as an invalid age range", func() {
				So(errors.Is(err, generator.ErrInvalidRequest), ShouldBeTrue)
				So(errors.Is(err, generator.ErrInvalidAgeRange), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "must not exceed 150")
			})
		})

		Convey("When both bounds are huge and equal", func() {
			employees, err := seeded(1).Generate(context.Background(),
				model.GenerationRequest{Count: 5, Age: model.AgeRange{Min: 1 << 40, Max: 1 << 40}}, now)

			Convey("Then Generate should refuse before sampling", func() {
				So(employees, ShouldBeNil)
				So(errors.Is(err, generator.ErrInvalidAgeRange), ShouldBeTrue)
			})
		})

		Convey("When the age bounds sit at the limits", func() {
			So(generator.Validate(model.GenerationRequest{Count: generator.MaxCount, Age: model.AgeRange{Min: generator.MaxAge, Max: generator.MaxAge}}), ShouldBeNil)
		})

		Convey("When the request is valid", func() {
			So(generator.Validate(model.GenerationRequest{Count: 0, Age: model.AgeRange{Min: 0, Max: 0}}), ShouldBeNil)
		})

		Convey("When Generate receives an invalid request", func() {
			employees, err := generator.New().Generate(context.Background(),
				model.GenerationRequest{Count: 5, Age: model.AgeRange{Min: 50, Max: 20}}, now)

			Convey("Then it should return the validation error and no employees", func() {
				So(employees, ShouldBeNil)
				So(errors.Is(err, generator.ErrInvalidAgeRange), ShouldBeTrue)
			})
		})
	})
}
