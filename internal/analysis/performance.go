package analysis

import (
	"math"

	"github.com/rotorbench/rotorbench/pkg/core"
)

const (
	// assemblyAllowanceG covers wiring, fasteners, and a camera, added to
	// every build regardless of configuration.
	assemblyAllowanceG = 50.0

	// scorecardThrottle is the reference throttle for the scorecard's power
	// draw figure.
	scorecardThrottle = 0.5
)

// Rating band boundaries, inclusive on the lower bound of each band.
const (
	weightMediumMinG = 500.0
	weightHeavyMinG  = 700.0

	twrAdequateMin  = 3.0
	twrGoodMin      = 5.0
	twrExcellentMin = 8.0
)

// TotalWeight returns the all-up weight of a build in grams. Per-motor parts
// are multiplied by the motor count; every term is non-negative and the
// assembly allowance applies unconditionally.
func TotalWeight(c core.Components) float64 {
	total := assemblyAllowanceG
	motorCount := float64(c.MotorCount())

	if c.Frame != nil {
		total += c.Frame.Weight
	}
	if c.Motor != nil {
		total += c.Motor.Weight * motorCount
	}
	if c.Propeller != nil {
		total += c.Propeller.Weight * motorCount
	}
	if c.ESC != nil {
		total += c.ESC.Weight
	}
	if c.FlightController != nil {
		total += c.FlightController.Weight
	}
	if c.Battery != nil {
		total += c.Battery.Weight
	}
	if c.Receiver != nil {
		total += c.Receiver.Weight
	}

	return round1(total)
}

// MaxThrust returns the total thrust in grams with all motors at full
// throttle, or 0 when motor or propeller is missing.
func MaxThrust(c core.Components) float64 {
	if c.Motor == nil || c.Propeller == nil {
		return 0
	}
	return round1(ThrustPerMotor(c.Motor, c.Propeller) * float64(c.MotorCount()))
}

func weightRating(weightG float64) core.WeightRating {
	switch {
	case weightG < weightMediumMinG:
		return core.WeightLight
	case weightG < weightHeavyMinG:
		return core.WeightMedium
	default:
		return core.WeightHeavy
	}
}

func thrustRating(ratio float64) core.ThrustRating {
	switch {
	case ratio < twrAdequateMin:
		return core.ThrustPoor
	case ratio < twrGoodMin:
		return core.ThrustAdequate
	case ratio < twrExcellentMin:
		return core.ThrustGood
	default:
		return core.ThrustExcellent
	}
}

// EvaluatePerformance computes the static scorecard for a build.
func EvaluatePerformance(build core.Build) core.PerformanceMetrics {
	c := build.Components

	totalWeight := TotalWeight(c)
	maxThrust := MaxThrust(c)

	var twr float64
	if totalWeight > 0 {
		twr = maxThrust / totalWeight
	}

	return core.PerformanceMetrics{
		TotalWeight:         totalWeight,
		MaxThrust:           maxThrust,
		ThrustToWeightRatio: round2(twr),
		PowerDraw:           PowerDraw(build, scorecardThrottle),
		Rating: core.PerformanceRating{
			Weight:         weightRating(totalWeight),
			ThrustToWeight: thrustRating(twr),
		},
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
