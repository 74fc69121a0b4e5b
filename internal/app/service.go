// Package service provides the orchestrator that generates employees and
// summarizes them for the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/okian/staffgen/internal/domain/generator"
	"github.com/okian/staffgen/internal/domain/model"
	"github.com/okian/staffgen/internal/domain/stats"
	"github.com/okian/staffgen/pkg/logger"
	"github.com/okian/staffgen/pkg/metrics"
)

// Generator produces employees for a request at the given moment.
type Generator interface {
	Generate(ctx context.Context, req model.GenerationRequest, now time.Time) ([]model.Employee, error)
}

// Service runs generation followed by aggregation.
type Service struct {
	generator Generator
	now       func() time.Time
	maxCount  int
	logger    logger.Logger

	runs      atomic.Int64
	failures  atomic.Int64
	generated atomic.Int64

	mu        sync.RWMutex
	lastRunID string
	lastRunAt time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGenerator replaces the default random generator.
func WithGenerator(g Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithClock sets the source of the current moment used for both generation and statistics.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxCount caps the number of employees per request. Zero leaves only the
// generator's hard limit.
func WithMaxCount(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxCount = n
		}
	}
}

// New constructs a Service. The global logger must be initialized unless
// WithLogger is supplied.
func New(opts ...Option) *Service {
	s := &Service{
		generator: generator.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Generate produces req.Count employees and their statistics. The current
// moment is read once so that ages in the statistics agree with the sampled
// birth dates.
func (s *Service) Generate(ctx context.Context, req model.GenerationRequest) (model.Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	s.runs.Add(1)
	metrics.RecordGenerationRun()

	if s.maxCount > 0 && req.Count > s.maxCount {
		err := fmt.Errorf("%w: %d > %d", ErrCountTooLarge, req.Count, s.maxCount)
		s.fail(ctx, runID, err, start)
		return model.Result{}, err
	}

	now := s.now()
	employees, err := s.generator.Generate(ctx, req, now)
	if err != nil {
		err = fmt.Errorf("generate employees: %w", err)
		s.fail(ctx, runID, err, start)
		return model.Result{}, err
	}
	summary := stats.Summarize(employees, now)

	s.generated.Add(int64(len(employees)))
	s.mu.Lock()
	s.lastRunID = runID
	s.lastRunAt = now
	s.mu.Unlock()

	elapsed := time.Since(start)
	recordSummary(summary, elapsed)
	s.logger.Info(ctx, "generated employees",
		logger.String("runId", runID),
		logger.Int("count", len(employees)),
		logger.Int("minAge", req.Age.Min),
		logger.Int("maxAge", req.Age.Max),
		logger.Float64("averageAge", summary.AverageAge),
		logger.Duration("elapsed", elapsed),
	)

	return model.Result{
		RunID:      runID,
		Employees:  employees,
		Statistics: summary,
	}, nil
}

func (s *Service) fail(ctx context.Context, runID string, err error, start time.Time) {
	s.failures.Add(1)
	reason := failureReason(err)
	metrics.RecordGenerationError(reason)
	metrics.RecordErrorLatency("generator", reason, float64(time.Since(start).Milliseconds()))
	s.logger.Warn(ctx, "generation failed",
		logger.String("runId", runID),
		logger.String("reason", reason),
		logger.Error(err),
	)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, generator.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrCountTooLarge):
		return "count_too_large"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}

func recordSummary(s model.Statistics, elapsed time.Duration) {
	metrics.RecordEmployeesGenerated(s.Total)
	metrics.UpdateLastBatchSize(s.Total)
	metrics.RecordGenerationLatency(float64(elapsed.Microseconds()) / 1000)
	metrics.RecordWorkloadTier(strconv.Itoa(model.Workload10), s.Workload10)
	metrics.RecordWorkloadTier(strconv.Itoa(model.Workload20), s.Workload20)
	metrics.RecordWorkloadTier(strconv.Itoa(model.Workload30), s.Workload30)
	metrics.RecordWorkloadTier(strconv.Itoa(model.Workload40), s.Workload40)
	if s.Total > 0 {
		metrics.UpdateLastAverageAge(s.AverageAge)
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := map[string]interface{}{
		"runs":               s.runs.Load(),
		"failures":           s.failures.Load(),
		"employeesGenerated": s.generated.Load(),
		"maxCount":           s.maxCount,
	}
	if s.lastRunID != "" {
		snapshot["lastRunId"] = s.lastRunID
		snapshot["lastRunAt"] = s.lastRunAt.UTC().Format(time.RFC3339)
	}
	return snapshot
}
