package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rotorbench/rotorbench/pkg/core"
)

func TestTotalWeight(t *testing.T) {
	build := completeBuild()

	// frame + 4 motors + 4 props + esc + fc + battery + rx + 50g allowance
	want := 100.0 + 4*30 + 4*5 + 15 + 10 + 200 + 2 + 50
	assert.Equal(t, want, TotalWeight(build.Components))
}

func TestTotalWeightFloorIsAllowance(t *testing.T) {
	assert.Equal(t, 50.0, TotalWeight(core.Components{}))
}

func TestTotalWeightMonotonic(t *testing.T) {
	base := completeBuild().Components
	baseline := TotalWeight(base)

	heavier := []func(c *core.Components){
		func(c *core.Components) { c.Frame.Weight += 10 },
		func(c *core.Components) { c.Motor.Weight += 10 },
		func(c *core.Components) { c.Propeller.Weight += 10 },
		func(c *core.Components) { c.ESC.Weight += 10 },
		func(c *core.Components) { c.FlightController.Weight += 10 },
		func(c *core.Components) { c.Battery.Weight += 10 },
		func(c *core.Components) { c.Receiver.Weight += 10 },
	}

	for i, bump := range heavier {
		c := completeBuild().Components
		bump(&c)
		assert.Greater(t, TotalWeight(c), baseline, "component %d", i)
	}
}

func TestMaxThrust(t *testing.T) {
	build := completeBuild()
	assert.Equal(t, 5200.0, MaxThrust(build.Components)) // 1300g x 4 motors

	noProp := completeBuild().Components
	noProp.Propeller = nil
	assert.Equal(t, 0.0, MaxThrust(noProp))

	noMotor := completeBuild().Components
	noMotor.Motor = nil
	assert.Equal(t, 0.0, MaxThrust(noMotor))
}

func TestWeightRatingBands(t *testing.T) {
	tests := []struct {
		weight float64
		want   core.WeightRating
	}{
		{weight: 0, want: core.WeightLight},
		{weight: 499.9, want: core.WeightLight},
		{weight: 500, want: core.WeightMedium},
		{weight: 699.9, want: core.WeightMedium},
		{weight: 700, want: core.WeightHeavy},
		{weight: 1200, want: core.WeightHeavy},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, weightRating(tt.weight), "weight=%v", tt.weight)
	}
}

func TestThrustRatingBands(t *testing.T) {
	tests := []struct {
		ratio float64
		want  core.ThrustRating
	}{
		{ratio: 0, want: core.ThrustPoor},
		{ratio: 2.99, want: core.ThrustPoor},
		{ratio: 3.0, want: core.ThrustAdequate},
		{ratio: 4.99, want: core.ThrustAdequate},
		{ratio: 5.0, want: core.ThrustGood},
		{ratio: 7.99, want: core.ThrustGood},
		{ratio: 8.0, want: core.ThrustExcellent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, thrustRating(tt.ratio), "ratio=%v", tt.ratio)
	}
}

func TestEvaluatePerformance(t *testing.T) {
	build := completeBuild()
	got := EvaluatePerformance(build)

	assert.Equal(t, 517.0, got.TotalWeight)
	assert.Equal(t, 5200.0, got.MaxThrust)
	assert.InDelta(t, 5200.0/517.0, got.ThrustToWeightRatio, 0.01)
	assert.Equal(t, PowerDraw(build, 0.5), got.PowerDraw)
	assert.Equal(t, core.WeightMedium, got.Rating.Weight)
	assert.Equal(t, core.ThrustExcellent, got.Rating.ThrustToWeight)
}
