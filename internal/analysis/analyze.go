// Package analysis implements the build performance and flight-simulation
// engine: a pure, single-shot pipeline from a hydrated build to a
// performance report. It holds no state and performs no I/O; all failure is
// represented in the result's error and warning lists.
package analysis

import "github.com/rotorbench/rotorbench/pkg/core"

// propSetSize is the purchase multiplier for propellers: a full set
// including spares.
const propSetSize = 4

// TotalCost sums catalog prices for every selected component. Motors are
// priced per motor-count, propellers per set. Cost is computed regardless of
// build validity.
func TotalCost(build core.Build) float64 {
	c := build.Components
	total := 0.0

	if c.Frame != nil {
		total += c.Frame.Price
	}
	if c.Motor != nil {
		total += c.Motor.Price * float64(c.MotorCount())
	}
	if c.Propeller != nil {
		total += c.Propeller.Price * propSetSize
	}
	if c.ESC != nil {
		total += c.ESC.Price
	}
	if c.FlightController != nil {
		total += c.FlightController.Price
	}
	if c.Battery != nil {
		total += c.Battery.Price
	}
	if c.Receiver != nil {
		total += c.Receiver.Price
	}

	return round2(total)
}

// emptyPerformance is the scorecard sentinel for builds missing mandatory
// parts. The ratings mirror what the zero figures would classify as.
func emptyPerformance() core.PerformanceMetrics {
	return core.PerformanceMetrics{
		Rating: core.PerformanceRating{
			Weight:         core.WeightMedium,
			ThrustToWeight: core.ThrustPoor,
		},
	}
}

// Analyze produces the composite report for one build: validation first,
// then scorecard and flight simulation when motor, battery, and propeller
// are all selected, sentinels otherwise. It never fails; a fresh result is
// allocated per call and the build is left untouched.
func Analyze(build core.Build) core.BuildAnalysis {
	isValid, errors, warnings := ValidateBuild(build)

	c := build.Components
	var performance core.PerformanceMetrics
	var simulation core.FlightSimulation

	if c.Motor != nil && c.Battery != nil && c.Propeller != nil {
		performance = EvaluatePerformance(build)
		simulation = SimulateFlight(build)
	} else {
		performance = emptyPerformance()
		simulation = emptyFlightSimulation()
	}

	return core.BuildAnalysis{
		IsValid:          isValid,
		Errors:           errors,
		Warnings:         warnings,
		Performance:      performance,
		FlightSimulation: simulation,
		TotalCost:        TotalCost(build),
	}
}
