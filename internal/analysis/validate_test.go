package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotorbench/rotorbench/pkg/core"
)

func TestValidateBuildComplete(t *testing.T) {
	isValid, errors, warnings := ValidateBuild(completeBuild())

	assert.True(t, isValid)
	assert.Empty(t, errors)
	assert.Empty(t, warnings)
}

func TestValidateBuildEmpty(t *testing.T) {
	isValid, errors, warnings := ValidateBuild(core.Build{})

	assert.False(t, isValid)
	assert.Equal(t, []string{
		"Frame is required",
		"Motors are required",
		"Propellers are required",
		"Battery is required",
	}, errors)
	assert.Equal(t, []string{
		"ESC not selected - some calculations may be limited",
		"Flight controller not selected - weight calculation excludes FC",
	}, warnings)
}

func TestValidateBuildVoltageMismatch(t *testing.T) {
	build := completeBuild()
	build.Components.Motor.Voltage = core.VoltageRange{Min: 19.0, Max: 25.2}
	// Battery stays at 14.8 V nominal.

	isValid, errors, _ := ValidateBuild(build)

	assert.False(t, isValid)
	require.Len(t, errors, 1)
	assert.Contains(t, errors[0], "14.8")
	assert.Contains(t, errors[0], "19")
	assert.Contains(t, errors[0], "25.2")
}

func TestValidateBuildBatteryExceedsESC(t *testing.T) {
	build := completeBuild()
	build.Components.ESC.Voltage.Max = 12.0

	isValid, errors, _ := ValidateBuild(build)

	assert.False(t, isValid)
	require.Len(t, errors, 1)
	assert.Contains(t, errors[0], "exceeds ESC maximum")
	assert.Contains(t, errors[0], "14.8")
	assert.Contains(t, errors[0], "12")
}

func TestValidateBuildMotorOverESCRatingIsWarning(t *testing.T) {
	build := completeBuild()
	build.Components.ESC.CurrentRating = 25 // motor draws up to 30 A

	isValid, errors, warnings := ValidateBuild(build)

	// Tolerated but flagged: still valid.
	assert.True(t, isValid)
	assert.Empty(t, errors)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "may exceed ESC rating")
	assert.Contains(t, warnings[0], "per channel")
}

func TestValidateBuildOversizedProp(t *testing.T) {
	build := completeBuild()
	build.Components.Propeller.Size = 7.0 // frame max is 5.5"

	isValid, errors, _ := ValidateBuild(build)

	assert.False(t, isValid)
	require.Len(t, errors, 1)
	assert.Contains(t, errors[0], "exceeds frame maximum")
}

func TestValidateBuildWarningsDoNotAffectValidity(t *testing.T) {
	build := completeBuild()
	build.Components.ESC = nil
	build.Components.FlightController = nil

	isValid, errors, warnings := ValidateBuild(build)

	assert.True(t, isValid)
	assert.Empty(t, errors)
	assert.Len(t, warnings, 2)
}

func TestValidateBuildCrossChecksNeedBothSides(t *testing.T) {
	// Oversized prop with no frame: missing-frame error only, no size check.
	build := completeBuild()
	build.Components.Frame = nil
	build.Components.Propeller.Size = 12.0

	_, errors, _ := ValidateBuild(build)
	assert.Equal(t, []string{"Frame is required"}, errors)
}
