// Package main is the entry point for CaveBattle.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/cavebattle/internal/game"
	"github.com/samdwyer/cavebattle/internal/gamedata"
	"github.com/samdwyer/cavebattle/internal/logging"
	"github.com/samdwyer/cavebattle/internal/report"
	"github.com/samdwyer/cavebattle/internal/telemetry"
	"github.com/samdwyer/cavebattle/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML battle config")
	tui := flag.Bool("tui", false, "watch the battle in the terminal")
	reportPath := flag.String("report", "", "write a PDF battle report to this path")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	if err := run(*configPath, *tui, *reportPath); err != nil {
		log.Fatalf("cavebattle: %v", err)
	}
}

func run(configPath string, tui bool, reportPath string) error {
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if tui {
		cfg.TUI = true
	}
	if reportPath != "" {
		cfg.ReportPath = reportPath
	}
	// The TUI owns the terminal, so logs go to a file or nowhere.
	if cfg.TUI && cfg.LogPath == "" {
		cfg.LogPath = os.DevNull
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	tracer := telemetry.NoopTracer()
	if !telemetry.Enabled() {
		logger.Debug("no OTLP endpoint configured, tracing disabled")
	} else if shutdown, err := telemetry.Setup(ctx, telemetry.Options{SampleRatio: cfg.TraceSampleRatio}); err != nil {
		logger.Warn("telemetry setup failed, running without traces", zap.Error(err))
	} else {
		tracer = telemetry.Tracer("battle")
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("telemetry shutdown", zap.Error(err))
			}
		}()
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("encounter", zap.Int64("seed", seed), zap.Int("tier", cfg.Tier), zap.Int("group_size", cfg.GroupSize))
	rng := rand.New(rand.NewSource(seed))

	party, battle, err := game.NewEncounter(cfg, catalog, rng)
	if err != nil {
		return err
	}
	runner := game.NewRunner(battle, party, game.AutoCommander{}, rng,
		game.WithLogger(logger),
		game.WithTracer(tracer),
		game.WithMaxTurns(cfg.MaxTurns),
	)

	var summary game.Summary
	if cfg.TUI {
		screen, err := ui.NewScreen()
		if err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		summary, err = game.New(screen, runner).Run(ctx)
		if err != nil {
			return err
		}
	} else {
		summary, err = runner.Run(ctx)
		if err != nil {
			return err
		}
		for _, line := range summary.Log {
			fmt.Println(line)
		}
	}
	fmt.Printf("Outcome: %s after %d turns. Rewards: %d exp, %d gold.\n",
		summary.Outcome, summary.Turns, summary.Rewards.Exp, summary.Rewards.Gold)

	if cfg.ReportPath != "" {
		if err := writeReport(cfg.ReportPath, summary); err != nil {
			return err
		}
		logger.Info("report written", zap.String("path", cfg.ReportPath))
	}
	return nil
}

func writeReport(path string, s game.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.Write(f, s); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_CAVEBATTLE_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_CAVEBATTLE_DATASET")
	if dataset == "" {
		dataset = "cavebattle"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
