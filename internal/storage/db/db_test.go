package db

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotorbench/rotorbench/internal/database"
	"github.com/rotorbench/rotorbench/internal/model"
	"github.com/rotorbench/rotorbench/pkg/core"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	manager := database.NewManager(zerolog.Nop())
	db, err := manager.GetSqliteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	manager.DB = db
	require.NoError(t, db.AutoMigrate(model.DatabaseModels...))

	return New(manager)
}

func testCatalog() core.Catalog {
	return core.Catalog{
		Motors: []core.Motor{
			{ID: "motor-1", Name: "2306 2400KV", KV: 2400, Weight: 31.5, MaxCurrent: 30},
		},
		Propellers: []core.Propeller{
			{ID: "prop-1", Name: "5x4.5x3", Size: 5, ThrustData: []core.ThrustPoint{
				{KV: 1800, Thrust: 900},
				{KV: 2400, Thrust: 1300},
			}},
		},
		Batteries: []core.Battery{
			{ID: "battery-1", Name: "1500 4S", Capacity: 1500, Voltage: 14.8,
				DischargeProfile: []core.DischargePoint{
					{Percentage: 100, Voltage: 16.8},
					{Percentage: 0, Voltage: 12.0},
				}},
		},
		Frames: []core.Frame{
			{ID: "frame-1", Name: "220", MotorCount: 4, MaxPropSize: 5.5},
		},
	}
}

func TestSeedAndLookup(t *testing.T) {
	b := newTestBackend(t)
	require.NoError(t, b.Seed(testCatalog()))

	m, err := b.Motor("motor-1")
	require.NoError(t, err)
	assert.Equal(t, 2400, m.KV)

	p, err := b.Propeller("prop-1")
	require.NoError(t, err)
	require.Len(t, p.ThrustData, 2)
	assert.Equal(t, 1300.0, p.ThrustData[1].Thrust)

	bat, err := b.Battery("battery-1")
	require.NoError(t, err)
	require.Len(t, bat.DischargeProfile, 2)
	assert.Equal(t, 16.8, bat.DischargeProfile[0].Voltage)

	_, err = b.Motor("missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	b := newTestBackend(t)
	require.NoError(t, b.Seed(testCatalog()))
	require.NoError(t, b.Seed(testCatalog()))

	catalog, err := b.Catalog()
	require.NoError(t, err)
	assert.Len(t, catalog.Motors, 1)
	assert.Len(t, catalog.Propellers, 1)
}

func TestBuildLifecycle(t *testing.T) {
	b := newTestBackend(t)
	require.NoError(t, b.Seed(testCatalog()))

	cfg := core.BuildConfig{
		Name: "Race",
		ComponentIDs: core.ComponentIDs{
			FrameID:   "frame-1",
			MotorID:   "motor-1",
			BatteryID: "battery-1",
		},
	}
	require.NoError(t, b.SaveBuild(&cfg))
	require.NotEmpty(t, cfg.ID)

	got, err := b.Build(cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Race", got.Name)
	assert.Equal(t, "motor-1", got.ComponentIDs.MotorID)
	assert.Empty(t, got.ComponentIDs.ESCID)

	cfg.Name = "Race v2"
	require.NoError(t, b.SaveBuild(&cfg))

	builds, err := b.Builds()
	require.NoError(t, err)
	require.Len(t, builds, 1)
	assert.Equal(t, "Race v2", builds[0].Name)

	require.NoError(t, b.DeleteBuild(cfg.ID))
	_, err = b.Build(cfg.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.ErrorIs(t, b.DeleteBuild(cfg.ID), core.ErrNotFound)
}
