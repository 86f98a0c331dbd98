package analysis

import (
	"math"

	"github.com/rotorbench/rotorbench/pkg/core"
)

// Empirical constants of the power model. These calibrate the engine against
// bench data and are fixed, not derived.
const (
	// throttleCurrentExponent models non-linear propeller loading:
	// current = maxCurrent * throttle^1.8.
	throttleCurrentExponent = 1.8

	// fcCurrentA is the baseline draw of a flight controller in amps.
	fcCurrentA = 0.5
)

// CurrentAtThrottle returns the per-motor current in amps at the given
// throttle fraction (0..1).
func CurrentAtThrottle(motor *core.Motor, throttle float64) float64 {
	if motor == nil {
		return 0
	}
	return motor.MaxCurrent * math.Pow(throttle, throttleCurrentExponent)
}

// avionicsCurrent sums the baseline draw of support electronics in amps:
// 0.5 A for a flight controller plus the receiver's rated draw. Each term is
// included only when the part is selected.
func avionicsCurrent(c core.Components) float64 {
	var total float64
	if c.FlightController != nil {
		total += fcCurrentA
	}
	if c.Receiver != nil {
		total += c.Receiver.CurrentDraw / 1000.0
	}
	return total
}

// packCurrent returns total pack current in amps at the given throttle:
// all motors plus avionics.
func packCurrent(c core.Components, throttle float64) float64 {
	return CurrentAtThrottle(c.Motor, throttle)*float64(c.MotorCount()) + avionicsCurrent(c)
}

// PowerDraw returns the pack power draw in watts at the given throttle
// fraction, or 0 when motor or battery is missing.
func PowerDraw(build core.Build, throttle float64) float64 {
	c := build.Components
	if c.Motor == nil || c.Battery == nil {
		return 0
	}
	return round2(c.Battery.Voltage * packCurrent(c, throttle))
}
