// Package main is the entry point for townmap.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/townmap/internal/game"
	"github.com/samdwyer/townmap/internal/gamedata"
	"github.com/samdwyer/townmap/internal/telemetry"
	"github.com/samdwyer/townmap/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := game.DefaultConfig()
	var buildings, logLevel string
	var play bool

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flag.StringVar(&buildings, "buildings", "", "comma-separated building kinds, e.g. trading_post,tavern")
	flag.IntVar(&cfg.BuildingCount, "count", cfg.BuildingCount, "number of weighted random buildings, replacing the default list")
	flag.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "full regenerations before giving up")
	flag.IntVar(&cfg.Traders, "traders", cfg.Traders, "trader NPCs placed in the trading post")
	flag.StringVar(&cfg.CatalogPath, "catalog", "", "directory holding buildings.json (default: embedded)")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.BoolVar(&play, "play", false, "walk the town in the terminal instead of printing it")
	flag.Parse()

	// Load .env file for local development
	envErr := godotenv.Load()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if v, ok := os.LookupEnv("TOWNMAP_LOG_LEVEL"); ok && !explicit["log-level"] {
		logLevel = v
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", logLevel, err)
		return 2
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if envErr != nil {
		log.Debug(".env file not loaded", "error", envErr)
	}

	if explicit["buildings"] {
		cfg.Buildings = gamedata.ParseBuildingKinds(buildings)
	}

	fromEnv := cfg
	if err := fromEnv.ApplyEnv(os.LookupEnv); err != nil {
		log.Error("invalid environment", "error", err)
		return 2
	}
	game.Merge(&cfg, &fromEnv, explicit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.ConfigFromEnv(os.Getenv))
	if err != nil {
		log.Warn("telemetry setup failed, running without observability", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Error("telemetry shutdown", "error", err)
			}
		}()
	}

	session, err := game.NewSession(ctx, cfg, log)
	if err != nil {
		log.Error("failed to build town", "error", err)
		return 1
	}

	if play {
		screen, err := ui.NewScreen()
		if err != nil {
			log.Error("failed to open terminal", "error", err)
			return 1
		}
		if err := session.Play(ctx, screen); err != nil {
			log.Error("play", "error", err)
			return 1
		}
		return 0
	}

	town := session.Town()
	fmt.Printf("%s (%dx%d, %d rooms, %d attempts, spawn %s)\n",
		town.Name, town.Grid.Width, town.Grid.Height, len(town.Rooms), town.Attempts, town.Spawn)
	fmt.Print(town.Dump())
	return 0
}
