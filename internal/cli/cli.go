// Package cli turns command-line arguments and an optional settings file
// into an app.Config.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/guardpatrol/internal/app"
	"github.com/katalvlaran/guardpatrol/internal/config"
)

// ExitError carries the process exit code for a usage failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean telling the caller to exit cleanly, or an ExitError.
//
// Precedence, lowest first: defaults, -config file, explicit flags, then the
// positional INPUT argument.
func Parse(ctx context.Context, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("guardpatrol", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
guardpatrol - walk the patrol guard and count loop-inducing obstructions.

Usage:
  guardpatrol [options] [INPUT]

Arguments:
  INPUT
    Path to the map file. "-" reads standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the map file.")
	iFlag := flagSet.String("i", "", "Path to the map file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	workersFlag := flagSet.Int("workers", 0, "Obstruction search workers. 0 uses all CPUs.")
	renderFlag := flagSet.Bool("render", false, "Print the map with the trail (X) and loop obstructions (O).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := app.Config{
		Workers:   *workersFlag,
		Render:    *renderFlag,
		LogFormat: *logFormatFlag,
		LogLevel:  *logLevelFlag,
	}

	if *configFlag != "" {
		file, err := config.Load(ctx, *configFlag)
		if err != nil {
			return nil, false, usageError("%s", err.Error())
		}
		applyFile(&cfg, file, set)
	}

	switch {
	case flagSet.NArg() > 0:
		cfg.InputPath = flagSet.Arg(0)
	case *inputFlag != "":
		cfg.InputPath = *inputFlag
	case *iFlag != "":
		cfg.InputPath = *iFlag
	}
	slog.Debug("Input path determined.", "path", cfg.InputPath)

	if cfg.InputPath == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	out, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("CLI parser finished successfully.", "config", out)
	return out, false, nil
}

// applyFile copies file settings into cfg unless the matching flag was set.
func applyFile(cfg *app.Config, file *config.File, set map[string]bool) {
	if file.Input != nil && !set["input"] && !set["i"] {
		cfg.InputPath = *file.Input
	}
	if file.Workers != nil && !set["workers"] {
		cfg.Workers = *file.Workers
	}
	if file.Render != nil && !set["render"] {
		cfg.Render = *file.Render
	}
	if file.Log != nil {
		if file.Log.Level != nil && !set["log-level"] {
			cfg.LogLevel = *file.Log.Level
		}
		if file.Log.Format != nil && !set["log-format"] {
			cfg.LogFormat = *file.Log.Format
		}
	}
}
