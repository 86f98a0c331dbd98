package analysis

import (
	"math"
	"sort"

	"github.com/rotorbench/rotorbench/pkg/core"
)

// Empirical constants of the flight profile.
const (
	// cruiseThrottle is the assumed average throttle for cruise estimates.
	cruiseThrottle = 0.5

	// usableCapacityFactor reserves 20% of pack capacity as a safety
	// margin that is never discharged.
	usableCapacityFactor = 0.8

	// avgSpeedKmh is a representative sport-flying cruise speed used for
	// the range estimate.
	avgSpeedKmh = 45.0

	// Max speed heuristic: maxSpeedBaseKmh * sqrt(twr / maxSpeedRefTWR).
	maxSpeedBaseKmh = 60.0
	maxSpeedRefTWR  = 5.0

	// Discharge series generation.
	dischargeStepMin   = 0.5
	dischargeCutoffPct = 20.0

	// maxDischargePoints caps series length against pathological inputs
	// (huge capacity with near-zero current).
	maxDischargePoints = 512

	// throttleSweepSteps gives 11 rows at 0%, 10%, ... 100%.
	throttleSweepSteps = 10
)

// flightTime returns the estimated minutes aloft and the average pack
// current in amps at the given throttle. Only the usable fraction of the
// pack is counted.
func flightTime(c core.Components, throttle float64) (minutes, avgCurrent float64) {
	if c.Battery == nil || c.Motor == nil {
		return 0, 0
	}

	current := packCurrent(c, throttle)
	if current <= 0 {
		return 0, 0
	}

	usable := float64(c.Battery.Capacity) * usableCapacityFactor
	hours := usable / (current * 1000)
	return round1(hours * 60), round2(current)
}

// hoverTime returns the estimated minutes the build can hold altitude.
// Thrust scales with throttle^2, so the hover throttle is
// sqrt(weight / maxThrust), capped at full throttle.
func hoverTime(c core.Components) float64 {
	if c.Battery == nil || c.Motor == nil {
		return 0
	}

	maxThrust := MaxThrust(c)
	if maxThrust == 0 {
		return 0
	}

	hoverThrottle := math.Sqrt(TotalWeight(c) / maxThrust)
	hoverThrottle = math.Min(hoverThrottle, 1.0)

	minutes, _ := flightTime(c, hoverThrottle)
	return minutes
}

// maxSpeed estimates top speed in km/h from the thrust-to-weight ratio.
// Heuristic, not derived from aerodynamics.
func maxSpeed(totalWeight, maxThrust float64) float64 {
	if totalWeight == 0 {
		return 0
	}
	twr := maxThrust / totalWeight
	return round1(maxSpeedBaseKmh * math.Sqrt(twr/maxSpeedRefTWR))
}

// sortedProfile returns a copy of the discharge profile sorted by descending
// percentage. The sort is stable so duplicate percentages keep their given
// relative order.
func sortedProfile(profile []core.DischargePoint) []core.DischargePoint {
	sorted := make([]core.DischargePoint, len(profile))
	copy(sorted, profile)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage > sorted[j].Percentage
	})
	return sorted
}

// interpolateVoltage resolves terminal voltage at a remaining-charge
// percentage from a descending-sorted profile. Queries outside the profile
// clamp to the nearest end; an empty profile yields 0.
func interpolateVoltage(profile []core.DischargePoint, percentage float64) float64 {
	if len(profile) == 0 {
		return 0
	}

	for i := 0; i < len(profile)-1; i++ {
		p1, p2 := profile[i], profile[i+1]
		if p2.Percentage <= percentage && percentage <= p1.Percentage {
			span := p1.Percentage - p2.Percentage
			if span == 0 {
				return p2.Voltage
			}
			t := (percentage - p2.Percentage) / span
			return p2.Voltage + t*(p1.Voltage-p2.Voltage)
		}
	}

	if percentage >= profile[0].Percentage {
		return profile[0].Voltage
	}
	return profile[len(profile)-1].Voltage
}

// dischargeCurve generates the discharge time series at dischargeStepMin
// intervals, stopping once remaining charge would drop under the cutoff.
// Instantaneous current is adjusted under a constant-power assumption as
// voltage sags.
func dischargeCurve(battery *core.Battery, flightTimeMin, avgCurrent float64) []core.DischargeDataPoint {
	points := []core.DischargeDataPoint{}
	if battery == nil || battery.Capacity <= 0 {
		return points
	}

	steps := int(flightTimeMin/dischargeStepMin) + 1
	if steps > maxDischargePoints {
		steps = maxDischargePoints
	}

	profile := sortedProfile(battery.DischargeProfile)
	capacity := float64(battery.Capacity)

	for i := 0; i < steps; i++ {
		t := float64(i) * dischargeStepMin

		dischargedMah := avgCurrent * 1000 * (t / 60.0)
		remaining := capacity - dischargedMah
		remainingPct := remaining / capacity * 100

		if remainingPct < dischargeCutoffPct {
			break
		}

		voltage := interpolateVoltage(profile, remainingPct)
		adjusted := avgCurrent
		if voltage > 0 {
			adjusted = avgCurrent * battery.Voltage / voltage
		}

		points = append(points, core.DischargeDataPoint{
			Time:              round1(t),
			Voltage:           round2(voltage),
			RemainingCapacity: round1(remaining),
			CurrentDraw:       round2(adjusted),
		})
	}

	return points
}

// throttleSweep generates the fixed 11-row thrust/current/power table used
// for charting.
func throttleSweep(c core.Components) []core.ThrottleProfilePoint {
	points := []core.ThrottleProfilePoint{}
	if c.Motor == nil || c.Propeller == nil || c.Battery == nil {
		return points
	}

	thrustPerMotor := ThrustPerMotor(c.Motor, c.Propeller)
	motorCount := float64(c.MotorCount())

	for step := 0; step <= throttleSweepSteps; step++ {
		throttle := float64(step) / float64(throttleSweepSteps)

		// Thrust scales roughly with throttle^2.
		thrust := thrustPerMotor * motorCount * throttle * throttle
		current := packCurrent(c, throttle)

		points = append(points, core.ThrottleProfilePoint{
			Throttle: round2(throttle),
			Thrust:   round1(thrust),
			Current:  round2(current),
			Power:    round2(c.Battery.Voltage * current),
		})
	}

	return points
}

// emptyFlightSimulation is the sentinel for builds missing motor, battery,
// or propeller: all numeric fields zero, sequences empty but non-nil.
func emptyFlightSimulation() core.FlightSimulation {
	return core.FlightSimulation{
		DischargeData:   []core.DischargeDataPoint{},
		ThrottleProfile: []core.ThrottleProfilePoint{},
	}
}

// SimulateFlight derives the full flight profile for a build. Returns the
// zero sentinel when motor, battery, or propeller is missing.
func SimulateFlight(build core.Build) core.FlightSimulation {
	c := build.Components
	if c.Motor == nil || c.Battery == nil || c.Propeller == nil {
		return emptyFlightSimulation()
	}

	cruiseTime, avgCurrent := flightTime(c, cruiseThrottle)

	totalWeight := TotalWeight(c)
	maxThrust := MaxThrust(c)

	rangeKm := round2(cruiseTime / 60.0 * avgSpeedKmh)

	var efficiency float64
	if rangeKm > 0 {
		efficiency = round1(float64(c.Battery.Capacity) * usableCapacityFactor / rangeKm)
	}

	return core.FlightSimulation{
		BatteryCapacity:     float64(c.Battery.Capacity),
		AvgCurrentDraw:      avgCurrent,
		EstimatedFlightTime: cruiseTime,
		EstimatedRange:      rangeKm,
		AvgSpeed:            avgSpeedKmh,
		HoverTime:           hoverTime(c),
		MaxSpeed:            maxSpeed(totalWeight, maxThrust),
		Efficiency:          efficiency,
		DischargeData:       dischargeCurve(c.Battery, cruiseTime, avgCurrent),
		ThrottleProfile:     throttleSweep(c),
	}
}
