// Package hydrate resolves stored component references into full builds.
package hydrate

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/rotorbench/rotorbench/internal/cache"
	"github.com/rotorbench/rotorbench/internal/storage"
	"github.com/rotorbench/rotorbench/pkg/core"
)

// Hydrator resolves build configurations against the component catalog.
// Unknown component IDs leave the slot empty rather than failing the build;
// validation reports the missing part downstream.
type Hydrator struct {
	backend storage.Backend
	cache   *cache.ComponentCache
	logger  zerolog.Logger
}

// New creates a Hydrator.
func New(backend storage.Backend, componentCache *cache.ComponentCache, log zerolog.Logger) *Hydrator {
	return &Hydrator{
		backend: backend,
		cache:   componentCache,
		logger:  log,
	}
}

// Hydrate resolves every referenced component of a stored build.
func (h *Hydrator) Hydrate(cfg core.BuildConfig) core.Build {
	build := core.Build{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Description: cfg.Description,
		CreatedAt:   cfg.CreatedAt,
		UpdatedAt:   cfg.UpdatedAt,
	}

	ids := cfg.ComponentIDs

	if ids.FrameID != "" {
		if frame, ok := h.frame(ids.FrameID); ok {
			build.Components.Frame = &frame
		}
	}
	if ids.MotorID != "" {
		if motor, ok := h.motor(ids.MotorID); ok {
			build.Components.Motor = &motor
		}
	}
	if ids.PropellerID != "" {
		if prop, ok := h.propeller(ids.PropellerID); ok {
			build.Components.Propeller = &prop
		}
	}
	if ids.ESCID != "" {
		if esc, ok := h.esc(ids.ESCID); ok {
			build.Components.ESC = &esc
		}
	}
	if ids.FlightControllerID != "" {
		if fc, ok := h.flightController(ids.FlightControllerID); ok {
			build.Components.FlightController = &fc
		}
	}
	if ids.BatteryID != "" {
		if battery, ok := h.battery(ids.BatteryID); ok {
			build.Components.Battery = &battery
		}
	}
	if ids.ReceiverID != "" {
		if rx, ok := h.receiver(ids.ReceiverID); ok {
			build.Components.Receiver = &rx
		}
	}

	return build
}

// report logs a failed component lookup. Missing IDs are expected for stale
// builds; anything else is a backend fault.
func (h *Hydrator) report(kind, id string, err error) {
	if errors.Is(err, core.ErrNotFound) {
		h.logger.Warn().Str("kind", kind).Str("id", id).Msg("Component not in catalog")
		return
	}
	h.logger.Error().Err(err).Str("kind", kind).Str("id", id).Msg("Component lookup failed")
}

func (h *Hydrator) frame(id string) (core.Frame, bool) {
	if v, ok := h.cache.GetFrame(id); ok {
		return v, true
	}
	v, err := h.backend.Frame(id)
	if err != nil {
		h.report("frame", id, err)
		return core.Frame{}, false
	}
	h.cache.AddFrame(v)
	return v, true
}

func (h *Hydrator) motor(id string) (core.Motor, bool) {
	if v, ok := h.cache.GetMotor(id); ok {
		return v, true
	}
	v, err := h.backend.Motor(id)
	if err != nil {
		h.report("motor", id, err)
		return core.Motor{}, false
	}
	h.cache.AddMotor(v)
	return v, true
}

func (h *Hydrator) propeller(id string) (core.Propeller, bool) {
	if v, ok := h.cache.GetPropeller(id); ok {
		return v, true
	}
	v, err := h.backend.Propeller(id)
	if err != nil {
		h.report("propeller", id, err)
		return core.Propeller{}, false
	}
	h.cache.AddPropeller(v)
	return v, true
}

func (h *Hydrator) esc(id string) (core.ESC, bool) {
	if v, ok := h.cache.GetESC(id); ok {
		return v, true
	}
	v, err := h.backend.ESC(id)
	if err != nil {
		h.report("esc", id, err)
		return core.ESC{}, false
	}
	h.cache.AddESC(v)
	return v, true
}

func (h *Hydrator) flightController(id string) (core.FlightController, bool) {
	if v, ok := h.cache.GetFlightController(id); ok {
		return v, true
	}
	v, err := h.backend.FlightController(id)
	if err != nil {
		h.report("flightController", id, err)
		return core.FlightController{}, false
	}
	h.cache.AddFlightController(v)
	return v, true
}

func (h *Hydrator) battery(id string) (core.Battery, bool) {
	if v, ok := h.cache.GetBattery(id); ok {
		return v, true
	}
	v, err := h.backend.Battery(id)
	if err != nil {
		h.report("battery", id, err)
		return core.Battery{}, false
	}
	h.cache.AddBattery(v)
	return v, true
}

func (h *Hydrator) receiver(id string) (core.Receiver, bool) {
	if v, ok := h.cache.GetReceiver(id); ok {
		return v, true
	}
	v, err := h.backend.Receiver(id)
	if err != nil {
		h.report("receiver", id, err)
		return core.Receiver{}, false
	}
	h.cache.AddReceiver(v)
	return v, true
}
