package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rotorbench/rotorbench/internal/config"
	"github.com/rotorbench/rotorbench/internal/influx"
	"github.com/rotorbench/rotorbench/internal/logging"
	"github.com/rotorbench/rotorbench/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := os.Getenv("ROTORBENCH_CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}
	if err := config.Load(configDir); err != nil {
		return err
	}

	logger, logCloser, err := logging.New(logging.Config{
		Level:          config.GetString("logLevel"),
		LogsDir:        config.GetString("logsDir"),
		AppName:        "rotorbench",
		GraylogEnabled: config.GetBool("graylog.enabled"),
		GraylogAddress: config.GetString("graylog.address"),
		SessionStart:   time.Now(),
	})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	backend, err := storage.NewBackend(config.GetString("storage.type"), logger)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return err
	}
	defer backend.Close()

	var influxManager *influx.Manager
	if config.GetBool("influx.enabled") {
		influxManager = influx.NewManager(logger)
		if err := influxManager.Connect(); err != nil {
			logger.Warn().Err(err).Msg("InfluxDB setup failed, continuing without export")
			influxManager = nil
		} else {
			defer influxManager.Close()
		}
	}

	app := &cli{
		backend: backend,
		influx:  influxManager,
		logger:  logger,
	}

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "catalog":
		return app.catalog(args[1:])
	case "builds":
		return app.builds()
	case "analyze":
		return app.analyze(args[1:])
	case "analyzesaved":
		return app.analyzeSaved(args[1:])
	case "savebuild":
		return app.saveBuild(args[1:])
	case "seed":
		return app.seed(args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func usage() {
	fmt.Println(`rotorbench - drone build performance analyzer

commands:
  catalog [kind]          print the component catalog (or one kind)
  builds                  list saved builds
  analyze <build.json>    analyze a build config from file
  analyzesaved <id...>    analyze saved builds by ID
  savebuild <build.json>  save a build config
  seed <components.json>  seed the database catalog from file`)
}
