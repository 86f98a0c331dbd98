// Package db implements the storage backend on top of GORM, using the
// database manager's Postgres connection with SQLite fallback.
package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotorbench/rotorbench/internal/database"
	"github.com/rotorbench/rotorbench/internal/model"
	"github.com/rotorbench/rotorbench/internal/model/convert"
	"github.com/rotorbench/rotorbench/pkg/core"
)

// Backend stores components and builds in a relational database.
type Backend struct {
	manager *database.Manager
}

// New creates a new database backend.
func New(manager *database.Manager) *Backend {
	return &Backend{manager: manager}
}

// Init connects to the database and migrates the schema.
func (b *Backend) Init() error {
	if err := b.manager.Connect(); err != nil {
		return err
	}
	return b.manager.Setup()
}

// Close closes the database connection.
func (b *Backend) Close() error {
	return b.manager.Close()
}

func notFound(err error, kind, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %q: %w", kind, id, core.ErrNotFound)
	}
	return err
}

// Motor returns the motor with the given ID.
func (b *Backend) Motor(id string) (core.Motor, error) {
	var row model.Motor
	if err := b.manager.DB.First(&row, "id = ?", id).Error; err != nil {
		return core.Motor{}, notFound(err, "motor", id)
	}
	return convert.MotorToCore(row), nil
}

// Propeller returns the propeller with the given ID.
func (b *Backend) Propeller(id string) (core.Propeller, error) {
	var row model.Propeller
	if err := b.manager.DB.First(&row, "id = ?", id).Error; err != nil {
		return core.Propeller{}, notFound(err, "propeller", id)
	}
	return convert.PropellerToCore(row), nil
}

// ESC returns the ESC with the given ID.
func (b *Backend) ESC(id string) (core.ESC, error) {
	var row model.ESC
	if err := b.manager.DB.First(&row, "id = ?", id).Error; err != nil {
		return core.ESC{}, notFound(err, "esc", id)
	}
	return convert.ESCToCore(row), nil
}

// FlightController returns the flight controller with the given ID.
func (b *Backend) FlightController(id string) (core.FlightController, error) {
	var row model.FlightController
	if err := b.manager.DB.First(&row, "id = ?", id).Error; err != nil {
		return core.FlightController{}, notFound(err, "flight controller", id)
	}
	return convert.FlightControllerToCore(row), nil
}

// Frame returns the frame with the given ID.
func (b *Backend) Frame(id string) (core.Frame, error) {
	var row model.Frame
	if err := b.manager.DB.First(&row, "id = ?", id).Error; err != nil {
		return core.Frame{}, notFound(err, "frame", id)
	}
	return convert.FrameToCore(row), nil
}

// Battery returns the battery with the given ID.
func (b *Backend) Battery(id string) (core.Battery, error) {
	var row model.Battery
	if err := b.manager.DB.First(&row, "id = ?", id).Error; err != nil {
		return core.Battery{}, notFound(err, "battery", id)
	}
	return convert.BatteryToCore(row), nil
}

// Receiver returns the receiver with the given ID.
func (b *Backend) Receiver(id string) (core.Receiver, error) {
	var row model.Receiver
	if err := b.manager.DB.First(&row, "id = ?", id).Error; err != nil {
		return core.Receiver{}, notFound(err, "receiver", id)
	}
	return convert.ReceiverToCore(row), nil
}

// Catalog returns the full component catalog.
func (b *Backend) Catalog() (core.Catalog, error) {
	var catalog core.Catalog

	var motors []model.Motor
	if err := b.manager.DB.Find(&motors).Error; err != nil {
		return core.Catalog{}, err
	}
	for _, row := range motors {
		catalog.Motors = append(catalog.Motors, convert.MotorToCore(row))
	}

	var propellers []model.Propeller
	if err := b.manager.DB.Find(&propellers).Error; err != nil {
		return core.Catalog{}, err
	}
	for _, row := range propellers {
		catalog.Propellers = append(catalog.Propellers, convert.PropellerToCore(row))
	}

	var escs []model.ESC
	if err := b.manager.DB.Find(&escs).Error; err != nil {
		return core.Catalog{}, err
	}
	for _, row := range escs {
		catalog.ESCs = append(catalog.ESCs, convert.ESCToCore(row))
	}

	var fcs []model.FlightController
	if err := b.manager.DB.Find(&fcs).Error; err != nil {
		return core.Catalog{}, err
	}
	for _, row := range fcs {
		catalog.FlightControllers = append(catalog.FlightControllers, convert.FlightControllerToCore(row))
	}

	var frames []model.Frame
	if err := b.manager.DB.Find(&frames).Error; err != nil {
		return core.Catalog{}, err
	}
	for _, row := range frames {
		catalog.Frames = append(catalog.Frames, convert.FrameToCore(row))
	}

	var batteries []model.Battery
	if err := b.manager.DB.Find(&batteries).Error; err != nil {
		return core.Catalog{}, err
	}
	for _, row := range batteries {
		catalog.Batteries = append(catalog.Batteries, convert.BatteryToCore(row))
	}

	var receivers []model.Receiver
	if err := b.manager.DB.Find(&receivers).Error; err != nil {
		return core.Catalog{}, err
	}
	for _, row := range receivers {
		catalog.Receivers = append(catalog.Receivers, convert.ReceiverToCore(row))
	}

	return catalog, nil
}

// Builds returns all saved build configurations.
func (b *Backend) Builds() ([]core.BuildConfig, error) {
	var rows []model.BuildConfig
	if err := b.manager.DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	builds := make([]core.BuildConfig, 0, len(rows))
	for _, row := range rows {
		builds = append(builds, convert.BuildConfigToCore(row))
	}
	return builds, nil
}

// Build returns the saved build with the given ID.
func (b *Backend) Build(id string) (core.BuildConfig, error) {
	var row model.BuildConfig
	if err := b.manager.DB.First(&row, "id = ?", id).Error; err != nil {
		return core.BuildConfig{}, notFound(err, "build", id)
	}
	return convert.BuildConfigToCore(row), nil
}

// SaveBuild inserts or updates a build configuration. New builds are
// assigned a UUID.
func (b *Backend) SaveBuild(cfg *core.BuildConfig) error {
	now := time.Now().UTC()
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now

	row := convert.CoreToBuildConfig(*cfg)
	return b.manager.DB.Save(&row).Error
}

// DeleteBuild removes a saved build.
func (b *Backend) DeleteBuild(id string) error {
	res := b.manager.DB.Delete(&model.BuildConfig{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("build %q: %w", id, core.ErrNotFound)
	}
	return nil
}

// Seed inserts catalog components, skipping IDs that already exist.
func (b *Backend) Seed(catalog core.Catalog) error {
	tx := b.manager.DB

	for _, m := range catalog.Motors {
		row := convert.CoreToMotor(m)
		if err := tx.Where("id = ?", m.ID).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	for _, p := range catalog.Propellers {
		row := convert.CoreToPropeller(p)
		if err := tx.Where("id = ?", p.ID).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	for _, e := range catalog.ESCs {
		row := convert.CoreToESC(e)
		if err := tx.Where("id = ?", e.ID).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	for _, f := range catalog.FlightControllers {
		row := convert.CoreToFlightController(f)
		if err := tx.Where("id = ?", f.ID).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	for _, f := range catalog.Frames {
		row := convert.CoreToFrame(f)
		if err := tx.Where("id = ?", f.ID).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	for _, bat := range catalog.Batteries {
		row := convert.CoreToBattery(bat)
		if err := tx.Where("id = ?", bat.ID).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	for _, r := range catalog.Receivers {
		row := convert.CoreToReceiver(r)
		if err := tx.Where("id = ?", r.ID).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
