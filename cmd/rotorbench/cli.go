package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rotorbench/rotorbench/internal/analysis"
	"github.com/rotorbench/rotorbench/internal/cache"
	"github.com/rotorbench/rotorbench/internal/config"
	"github.com/rotorbench/rotorbench/internal/hydrate"
	"github.com/rotorbench/rotorbench/internal/influx"
	"github.com/rotorbench/rotorbench/internal/queue"
	"github.com/rotorbench/rotorbench/internal/storage"
	"github.com/rotorbench/rotorbench/internal/storage/db"
	"github.com/rotorbench/rotorbench/internal/worker"
	"github.com/rotorbench/rotorbench/pkg/core"
)

type cli struct {
	backend storage.Backend
	influx  *influx.Manager
	logger  zerolog.Logger
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// catalog prints the component catalog, optionally filtered to one kind.
func (c *cli) catalog(args []string) error {
	catalog, err := c.backend.Catalog()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return printJSON(catalog)
	}

	switch args[0] {
	case "motors":
		return printJSON(catalog.Motors)
	case "propellers":
		return printJSON(catalog.Propellers)
	case "escs":
		return printJSON(catalog.ESCs)
	case "flightcontrollers":
		return printJSON(catalog.FlightControllers)
	case "frames":
		return printJSON(catalog.Frames)
	case "batteries":
		return printJSON(catalog.Batteries)
	case "receivers":
		return printJSON(catalog.Receivers)
	default:
		return fmt.Errorf("unknown component kind: %s", args[0])
	}
}

// builds lists all saved build configurations.
func (c *cli) builds() error {
	builds, err := c.backend.Builds()
	if err != nil {
		return err
	}
	return printJSON(builds)
}

// analyze hydrates and analyzes a build config read from a JSON file.
func (c *cli) analyze(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("analyze requires a build config file")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var cfg core.BuildConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse build config: %w", err)
	}

	hydrator := hydrate.New(c.backend, cache.NewComponentCache(), c.logger)
	service, err := analysis.NewService(c.logger)
	if err != nil {
		return err
	}

	build := hydrator.Hydrate(cfg)
	result := service.Analyze(context.Background(), build)

	if c.influx != nil {
		if err := c.influx.WriteAnalysis(build.Name, result); err != nil {
			c.logger.Error().Err(err).Msg("Failed to export analysis")
		}
	}

	return printJSON(result)
}

// analyzeSaved analyzes saved builds by ID using the worker pool.
func (c *cli) analyzeSaved(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("analyzesaved requires at least one build ID")
	}

	hydrator := hydrate.New(c.backend, cache.NewComponentCache(), c.logger)
	service, err := analysis.NewService(c.logger)
	if err != nil {
		return err
	}
	runner := worker.NewRunner(
		c.backend, hydrator, service, c.influx, c.logger,
		config.GetInt("worker.count"),
	)

	ids := queue.New[string]()
	ids.Push(args...)

	results := runner.Run(context.Background(), ids)

	out := make(map[string]any, len(results))
	for _, res := range results {
		if res.Err != nil {
			out[res.BuildID] = map[string]string{"error": res.Err.Error()}
			continue
		}
		out[res.BuildID] = res.Analysis
	}
	return printJSON(out)
}

// saveBuild stores a build config read from a JSON file.
func (c *cli) saveBuild(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("savebuild requires a build config file")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var cfg core.BuildConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse build config: %w", err)
	}

	if err := c.backend.SaveBuild(&cfg); err != nil {
		return err
	}
	fmt.Println(cfg.ID)
	return nil
}

// seed loads a catalog file into the database backend.
func (c *cli) seed(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("seed requires a components file")
	}

	dbBackend, ok := c.backend.(*db.Backend)
	if !ok {
		return fmt.Errorf("seed requires storage.type=db")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var catalog core.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to parse components file: %w", err)
	}

	if err := dbBackend.Seed(catalog); err != nil {
		return err
	}
	c.logger.Info().
		Int("motors", len(catalog.Motors)).
		Int("propellers", len(catalog.Propellers)).
		Int("batteries", len(catalog.Batteries)).
		Msg("Catalog seeded")
	return nil
}
