package analysis

import (
	"fmt"

	"github.com/rotorbench/rotorbench/pkg/core"
)

// ValidateBuild checks a build for completeness and cross-component
// compatibility. Missing frame, motor, propeller, or battery produce errors;
// missing ESC or flight controller only warnings. Cross-checks run when both
// sides are present. A build is valid when it has no errors; warnings never
// affect validity.
func ValidateBuild(build core.Build) (isValid bool, errors, warnings []string) {
	errors = []string{}
	warnings = []string{}
	c := build.Components

	if c.Frame == nil {
		errors = append(errors, "Frame is required")
	}
	if c.Motor == nil {
		errors = append(errors, "Motors are required")
	}
	if c.Propeller == nil {
		errors = append(errors, "Propellers are required")
	}
	if c.Battery == nil {
		errors = append(errors, "Battery is required")
	}

	if c.ESC == nil {
		warnings = append(warnings, "ESC not selected - some calculations may be limited")
	}
	if c.FlightController == nil {
		warnings = append(warnings, "Flight controller not selected - weight calculation excludes FC")
	}

	if c.Motor != nil && c.Battery != nil {
		if c.Battery.Voltage < c.Motor.Voltage.Min || c.Battery.Voltage > c.Motor.Voltage.Max {
			errors = append(errors, fmt.Sprintf(
				"Battery voltage (%gV) is outside motor voltage range (%gV - %gV)",
				c.Battery.Voltage, c.Motor.Voltage.Min, c.Motor.Voltage.Max))
		}
	}

	if c.ESC != nil && c.Battery != nil {
		if c.Battery.Voltage > c.ESC.Voltage.Max {
			errors = append(errors, fmt.Sprintf(
				"Battery voltage (%gV) exceeds ESC maximum (%gV)",
				c.Battery.Voltage, c.ESC.Voltage.Max))
		}
	}

	// ESC ratings are per channel, so a motor drawing past the rating is
	// tolerated but flagged.
	if c.Motor != nil && c.ESC != nil {
		if c.Motor.MaxCurrent > c.ESC.CurrentRating {
			warnings = append(warnings, fmt.Sprintf(
				"Motor current (%gA) may exceed ESC rating (%gA per channel)",
				c.Motor.MaxCurrent, c.ESC.CurrentRating))
		}
	}

	if c.Propeller != nil && c.Frame != nil {
		if c.Propeller.Size > c.Frame.MaxPropSize {
			errors = append(errors, fmt.Sprintf(
				"Propeller size (%g\") exceeds frame maximum (%g\")",
				c.Propeller.Size, c.Frame.MaxPropSize))
		}
	}

	return len(errors) == 0, errors, warnings
}
