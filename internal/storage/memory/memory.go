// Package memory implements a JSON-file storage backend. The component
// catalog is read once at Init; saved builds are persisted back to disk on
// every change.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rotorbench/rotorbench/internal/config"
	"github.com/rotorbench/rotorbench/pkg/core"
)

// Backend stores the catalog and builds in memory, backed by JSON files.
type Backend struct {
	cfg config.MemoryConfig

	motors            map[string]core.Motor
	propellers        map[string]core.Propeller
	escs              map[string]core.ESC
	flightControllers map[string]core.FlightController
	frames            map[string]core.Frame
	batteries         map[string]core.Battery
	receivers         map[string]core.Receiver

	catalog core.Catalog
	builds  map[string]core.BuildConfig

	mu sync.RWMutex
}

// New creates a new memory backend.
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:               cfg,
		motors:            make(map[string]core.Motor),
		propellers:        make(map[string]core.Propeller),
		escs:              make(map[string]core.ESC),
		flightControllers: make(map[string]core.FlightController),
		frames:            make(map[string]core.Frame),
		batteries:         make(map[string]core.Battery),
		receivers:         make(map[string]core.Receiver),
		builds:            make(map[string]core.BuildConfig),
	}
}

// Init loads the component catalog and any previously saved builds.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.loadCatalog(); err != nil {
		return err
	}
	return b.loadBuilds()
}

// Close cleans up resources.
func (b *Backend) Close() error {
	return nil
}

func (b *Backend) loadCatalog() error {
	data, err := os.ReadFile(b.cfg.ComponentsFile)
	if err != nil {
		return fmt.Errorf("failed to read components file: %w", err)
	}

	var catalog core.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to parse components file: %w", err)
	}
	b.catalog = catalog

	for _, m := range catalog.Motors {
		b.motors[m.ID] = m
	}
	for _, p := range catalog.Propellers {
		b.propellers[p.ID] = p
	}
	for _, e := range catalog.ESCs {
		b.escs[e.ID] = e
	}
	for _, f := range catalog.FlightControllers {
		b.flightControllers[f.ID] = f
	}
	for _, f := range catalog.Frames {
		b.frames[f.ID] = f
	}
	for _, bat := range catalog.Batteries {
		b.batteries[bat.ID] = bat
	}
	for _, r := range catalog.Receivers {
		b.receivers[r.ID] = r
	}

	return nil
}

func (b *Backend) loadBuilds() error {
	data, err := os.ReadFile(b.cfg.BuildsFile)
	if err != nil {
		// A missing builds file just means nothing saved yet.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read builds file: %w", err)
	}

	var builds []core.BuildConfig
	if err := json.Unmarshal(data, &builds); err != nil {
		return fmt.Errorf("failed to parse builds file: %w", err)
	}
	for _, cfg := range builds {
		b.builds[cfg.ID] = cfg
	}
	return nil
}

// persistBuilds writes all builds to disk. Callers must hold the lock.
func (b *Backend) persistBuilds() error {
	builds := make([]core.BuildConfig, 0, len(b.builds))
	for _, cfg := range b.builds {
		builds = append(builds, cfg)
	}

	data, err := json.MarshalIndent(builds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode builds: %w", err)
	}

	if dir := filepath.Dir(b.cfg.BuildsFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create builds dir: %w", err)
		}
	}
	if err := os.WriteFile(b.cfg.BuildsFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write builds file: %w", err)
	}
	return nil
}

// Motor returns the motor with the given ID.
func (b *Backend) Motor(id string) (core.Motor, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	m, ok := b.motors[id]
	if !ok {
		return core.Motor{}, fmt.Errorf("motor %q: %w", id, core.ErrNotFound)
	}
	return m, nil
}

// Propeller returns the propeller with the given ID.
func (b *Backend) Propeller(id string) (core.Propeller, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.propellers[id]
	if !ok {
		return core.Propeller{}, fmt.Errorf("propeller %q: %w", id, core.ErrNotFound)
	}
	return p, nil
}

// ESC returns the ESC with the given ID.
func (b *Backend) ESC(id string) (core.ESC, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.escs[id]
	if !ok {
		return core.ESC{}, fmt.Errorf("esc %q: %w", id, core.ErrNotFound)
	}
	return e, nil
}

// FlightController returns the flight controller with the given ID.
func (b *Backend) FlightController(id string) (core.FlightController, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	f, ok := b.flightControllers[id]
	if !ok {
		return core.FlightController{}, fmt.Errorf("flight controller %q: %w", id, core.ErrNotFound)
	}
	return f, nil
}

// Frame returns the frame with the given ID.
func (b *Backend) Frame(id string) (core.Frame, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	f, ok := b.frames[id]
	if !ok {
		return core.Frame{}, fmt.Errorf("frame %q: %w", id, core.ErrNotFound)
	}
	return f, nil
}

// Battery returns the battery with the given ID.
func (b *Backend) Battery(id string) (core.Battery, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	bat, ok := b.batteries[id]
	if !ok {
		return core.Battery{}, fmt.Errorf("battery %q: %w", id, core.ErrNotFound)
	}
	return bat, nil
}

// Receiver returns the receiver with the given ID.
func (b *Backend) Receiver(id string) (core.Receiver, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.receivers[id]
	if !ok {
		return core.Receiver{}, fmt.Errorf("receiver %q: %w", id, core.ErrNotFound)
	}
	return r, nil
}

// Catalog returns the full component catalog in file order.
func (b *Backend) Catalog() (core.Catalog, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.catalog, nil
}

// Builds returns all saved build configurations.
func (b *Backend) Builds() ([]core.BuildConfig, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	builds := make([]core.BuildConfig, 0, len(b.builds))
	for _, cfg := range b.builds {
		builds = append(builds, cfg)
	}
	return builds, nil
}

// Build returns the saved build with the given ID.
func (b *Backend) Build(id string) (core.BuildConfig, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cfg, ok := b.builds[id]
	if !ok {
		return core.BuildConfig{}, fmt.Errorf("build %q: %w", id, core.ErrNotFound)
	}
	return cfg, nil
}

// SaveBuild inserts or updates a build configuration. New builds are
// assigned a UUID.
func (b *Backend) SaveBuild(cfg *core.BuildConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now().UTC()
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now

	b.builds[cfg.ID] = *cfg
	return b.persistBuilds()
}

// DeleteBuild removes a saved build.
func (b *Backend) DeleteBuild(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.builds[id]; !ok {
		return fmt.Errorf("build %q: %w", id, core.ErrNotFound)
	}
	delete(b.builds, id)
	return b.persistBuilds()
}
