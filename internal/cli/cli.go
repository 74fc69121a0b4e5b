// Package cli implements the staffgen command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/okian/staffgen/internal/config"
	"github.com/okian/staffgen/pkg/logger"
	"github.com/spf13/cobra"
)

// SetupLogging initializes the global logger writing to stderr and, when
// logFile is set, to that file as well. Verbose overrides level with debug.
// The returned func closes the file.
func SetupLogging(logFile, format, level string, verbose bool) (func() error, error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() error { return nil }
	)

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %w", ErrSetupLogging, logFile, err)
		}
		w = io.MultiWriter(os.Stderr, file)
		closeFn = file.Close
	}

	if err := logger.Init(logger.WithWriter(w), logger.WithFormat(format)); err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("%w: %w", ErrSetupLogging, err)
	}
	if verbose {
		logger.SetLevel(slog.LevelDebug)
		return closeFn, nil
	}
	if err := logger.SetLevelString(level); err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("%w: %w", ErrSetupLogging, err)
	}
	return closeFn, nil
}

// NewRootCommand builds the staffgen command tree. Flag defaults come from cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "staffgen",
		Short:         "Generate synthetic employees and their statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(NewGenerateCommand(cfg))
	return root
}

// NewGenerateCommand builds the generate subcommand.
func NewGenerateCommand(cfg *config.Config) *cobra.Command {
	opts := &Config{
		Count:     cfg.DefaultCount,
		MinAge:    cfg.DefaultMinAge,
		MaxAge:    cfg.DefaultMaxAge,
		MaxCount:  cfg.MaxCount,
		Timeout:   DefaultTimeout,
		LogFormat: cfg.LogFormat,
		LogLevel:  cfg.LogLevel,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of employees",
		Long: `Generate a batch of employees with random gender, Czech names, date of
birth and workload, then print the statistics of the batch.

Examples:
  # 50 employees aged 20 to 40, generated in-process
  staffgen generate --count 50 --min-age 20 --max-age 40

  # Ask a running service and keep the full result
  staffgen generate --url http://localhost:9080 --output result.json

  # Reproducible batch including the employee list
  staffgen generate --seed 42 --employees`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			closeLog, err := SetupLogging(opts.LogFile, opts.LogFormat, opts.LogLevel, opts.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			return Run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Count, "count", "n", opts.Count, "Number of employees to generate")
	flags.IntVar(&opts.MinAge, "min-age", opts.MinAge, "Youngest age in whole years")
	flags.IntVar(&opts.MaxAge, "max-age", opts.MaxAge, "Oldest age in whole years")
	flags.StringVar(&opts.BaseURL, "url", "", "Base URL of a running service; empty generates in-process")
	flags.Uint64Var(&opts.Seed, "seed", 0, "Seed for reproducible in-process generation")
	flags.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "Overall timeout")
	flags.StringVarP(&opts.OutputFile, "output", "o", "", "Write the result JSON to this file")
	flags.StringVar(&opts.LogFile, "log", "", "Mirror log output to this file")
	flags.StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format: text or json")
	flags.BoolVar(&opts.ShowEmployees, "employees", false, "Print the employee list")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}
