package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"seatAllocator/internal/cli/commands/allocate"
	"seatAllocator/internal/cli/commands/available"
	"seatAllocator/internal/cli/commands/check"
	"seatAllocator/internal/cli/commands/stats"
	"seatAllocator/internal/config"
	"seatAllocator/internal/lib/logger/handlers/slogpretty"
	"seatAllocator/internal/lib/logger/sl"
	"seatAllocator/internal/report"
	"seatAllocator/internal/storage/audience"
	"seatAllocator/internal/storage/export"
	"seatAllocator/internal/storage/seats"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting seat allocator", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	if err := run(log, cfg, os.Args[1:]); err != nil {
		log.Error("execution failed", sl.Err(err))
		os.Exit(1)
	}
}

// run dispatches on the first non-flag argument. Without one the allocate
// command runs, so a bare `seat-allocator` does the whole batch.
func run(log *slog.Logger, cfg *config.Config, args []string) error {
	command := "allocate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "allocate":
		return runAllocate(log, cfg, args)
	case "stats":
		return runStats(log, cfg, args)
	case "check":
		return runCheck(log, cfg, args)
	case "available":
		return runAvailable(log, cfg, args)
	default:
		return fmt.Errorf("unknown command %q (expected allocate, stats, check or available)", command)
	}
}

func runAllocate(log *slog.Logger, cfg *config.Config, args []string) error {
	flagSet := pflag.NewFlagSet("allocate", pflag.ContinueOnError)
	seatsPath := flagSet.String("seats", cfg.Files.Seats, "path to the seat inventory JSON")
	audiencePath := flagSet.String("audience", cfg.Files.Audience, "path to the audience registration CSV")
	outputPath := flagSet.String("output", cfg.Files.Output, "path for the exported allocation CSV (blank skips the export)")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}

	var writer allocate.TableWriter
	if *outputPath != "" {
		tableWriter := export.NewWriter(*outputPath)
		log.Info("allocation table will be exported", slog.String("file", tableWriter.Path()))
		writer = tableWriter
	}

	return allocate.New(
		log,
		seats.New(*seatsPath),
		audience.New(log, *audiencePath),
		report.New(os.Stdout),
		writer,
	)()
}

func runStats(log *slog.Logger, cfg *config.Config, args []string) error {
	flagSet := pflag.NewFlagSet("stats", pflag.ContinueOnError)
	seatsPath := flagSet.String("seats", cfg.Files.Seats, "path to the seat inventory JSON")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}

	return stats.New(log, seats.New(*seatsPath), os.Stdout)()
}

func runCheck(log *slog.Logger, cfg *config.Config, args []string) error {
	flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
	seatsPath := flagSet.String("seats", cfg.Files.Seats, "path to the seat inventory JSON")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}

	return check.New(log, seats.New(*seatsPath), os.Stdout)()
}

func runAvailable(log *slog.Logger, cfg *config.Config, args []string) error {
	flagSet := pflag.NewFlagSet("available", pflag.ContinueOnError)
	seatsPath := flagSet.String("seats", cfg.Files.Seats, "path to the seat inventory JSON")
	reservedPath := flagSet.String("reserved", cfg.Files.Reserved, "path to a previously exported allocation CSV")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}

	return available.New(log, seats.New(*seatsPath), export.NewReader(*reservedPath), os.Stdout)()
}

func parseFlags(flagSet *pflag.FlagSet, args []string) error {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		return err
	}

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stderr)

	return slog.New(h)
}
