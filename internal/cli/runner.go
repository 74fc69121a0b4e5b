package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	service "github.com/okian/staffgen/internal/app"
	"github.com/okian/staffgen/internal/domain/generator"
	"github.com/okian/staffgen/internal/domain/model"
	"github.com/okian/staffgen/pkg/logger"
)

// Generator produces one batch with its statistics.
type Generator interface {
	Generate(ctx context.Context, req model.GenerationRequest) (model.Result, error)
}

// NewGenerator picks the remote client or an in-process orchestrator for cfg.
func NewGenerator(cfg *Config) Generator {
	if cfg.Remote() {
		return NewRemoteGenerator(cfg.BaseURL, cfg.Timeout)
	}

	var genOpts []generator.Option
	if cfg.Seed != 0 {
		genOpts = append(genOpts, generator.WithSource(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)))) //nolint:gosec // synthetic data
	}
	return service.New(
		service.WithLogger(logger.Named("service")),
		service.WithGenerator(generator.New(genOpts...)),
		service.WithMaxCount(cfg.MaxCount),
	)
}

// Run generates one batch according to cfg and renders it to out.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	return RunWith(ctx, cfg, NewGenerator(cfg), out)
}

// RunWith is Run with an explicit generator.
func RunWith(ctx context.Context, cfg *Config, gen Generator, out io.Writer) error {
	log := logger.Named("cli")
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	mode := "local"
	if cfg.Remote() {
		mode = "remote"
	}
	log.Debug(ctx, "starting generation",
		logger.String("mode", mode),
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("count", cfg.Count),
		logger.Int("minAge", cfg.MinAge),
		logger.Int("maxAge", cfg.MaxAge),
		logger.Duration("timeout", cfg.Timeout),
	)

	start := time.Now()
	result, err := gen.Generate(ctx, cfg.Request())
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	log.Info(ctx, "generation finished",
		logger.String("runId", result.RunID),
		logger.Int("employees", len(result.Employees)),
		logger.Duration("elapsed", time.Since(start)),
	)

	if cfg.OutputFile != "" {
		if err := SaveResult(cfg.OutputFile, result); err != nil {
			return err
		}
		log.Info(ctx, "result saved to file", logger.String("filename", cfg.OutputFile))
	}

	if cfg.ShowEmployees {
		RenderEmployees(out, result.Statistics.EmployeesSortedByWorkload)
	}
	RenderStatistics(out, result.RunID, result.Statistics)
	return nil
}

// SaveResult writes result as indented JSON, creating parent directories.
func SaveResult(filename string, result model.Result) error {
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("%w: create directory: %w", ErrSaveResult, err)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %w", ErrSaveResult, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filename, data, outputFilePermission); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveResult, err)
	}
	return nil
}
