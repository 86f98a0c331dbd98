package storage

import (
	"github.com/rotorbench/rotorbench/pkg/core"
)

// ErrNotFound is returned when a requested component or build does not
// exist in the backend.
var ErrNotFound = core.ErrNotFound

// Backend is the interface all storage implementations must satisfy.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Component catalog
	Motor(id string) (core.Motor, error)
	Propeller(id string) (core.Propeller, error)
	ESC(id string) (core.ESC, error)
	FlightController(id string) (core.FlightController, error)
	Frame(id string) (core.Frame, error)
	Battery(id string) (core.Battery, error)
	Receiver(id string) (core.Receiver, error)
	Catalog() (core.Catalog, error)

	// Saved builds
	Builds() ([]core.BuildConfig, error)
	Build(id string) (core.BuildConfig, error)
	SaveBuild(b *core.BuildConfig) error
	DeleteBuild(id string) error
}
