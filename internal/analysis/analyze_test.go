package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotorbench/rotorbench/pkg/core"
)

func TestTotalCost(t *testing.T) {
	build := completeBuild()

	// frame 50 + 4 motors at 20 + prop set of 4 at 3 + esc 60 + fc 40 +
	// battery 25 + rx 15
	want := 50.0 + 4*20 + 4*3 + 60 + 40 + 25 + 15
	assert.Equal(t, want, TotalCost(build))
}

func TestTotalCostEmptyBuild(t *testing.T) {
	assert.Equal(t, 0.0, TotalCost(core.Build{}))
}

func TestTotalCostIndependentOfValidity(t *testing.T) {
	build := completeBuild()
	build.Components.Frame = nil // drops validity, not cost of the rest

	want := 4*20.0 + 4*3 + 60 + 40 + 25 + 15
	assert.Equal(t, want, TotalCost(build))
}

func TestAnalyzeCompleteBuild(t *testing.T) {
	result := Analyze(completeBuild())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 517.0, result.Performance.TotalWeight)
	assert.Equal(t, 5200.0, result.Performance.MaxThrust)
	assert.NotEmpty(t, result.FlightSimulation.DischargeData)
	assert.Len(t, result.FlightSimulation.ThrottleProfile, 11)
	assert.Greater(t, result.TotalCost, 0.0)
}

func TestAnalyzeEmptyBuild(t *testing.T) {
	result := Analyze(core.Build{})

	assert.False(t, result.IsValid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors, "Frame is required")
	assert.Contains(t, result.Errors, "Motors are required")
	assert.Contains(t, result.Errors, "Propellers are required")
	assert.Contains(t, result.Errors, "Battery is required")

	assert.Equal(t, 0.0, result.Performance.TotalWeight)
	assert.Equal(t, 0.0, result.Performance.MaxThrust)
	assert.Equal(t, 0.0, result.Performance.PowerDraw)
	assert.Equal(t, core.WeightMedium, result.Performance.Rating.Weight)
	assert.Equal(t, core.ThrustPoor, result.Performance.Rating.ThrustToWeight)

	assert.Equal(t, emptyFlightSimulation(), result.FlightSimulation)
	assert.Equal(t, 0.0, result.TotalCost)
}

func TestAnalyzeInvalidButComputable(t *testing.T) {
	// Motor, battery, and propeller present: metrics are computed even
	// though the missing frame makes the build invalid.
	build := completeBuild()
	build.Components.Frame = nil

	result := Analyze(build)

	assert.False(t, result.IsValid)
	assert.Greater(t, result.Performance.TotalWeight, 50.0)
	assert.Greater(t, result.Performance.MaxThrust, 0.0)
	assert.NotEmpty(t, result.FlightSimulation.DischargeData)
}

func TestAnalyzeMissingMandatoryPartsShortCircuits(t *testing.T) {
	build := completeBuild()
	build.Components.Battery = nil

	result := Analyze(build)

	assert.False(t, result.IsValid)
	assert.Equal(t, emptyPerformance(), result.Performance)
	assert.Equal(t, emptyFlightSimulation(), result.FlightSimulation)
	// Cost still counts the parts that are present.
	assert.Greater(t, result.TotalCost, 0.0)
}

func TestAnalyzeDoesNotMutateBuild(t *testing.T) {
	build := completeBuild()
	before := build.Components.Propeller.ThrustData[0]

	_ = Analyze(build)

	assert.Equal(t, before, build.Components.Propeller.ThrustData[0])
}
