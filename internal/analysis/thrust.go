package analysis

import (
	"sort"

	"github.com/rotorbench/rotorbench/pkg/core"
)

// ThrustPerMotor returns the full-throttle thrust in grams for a motor and
// propeller pairing, resolved against the propeller's calibration table.
//
// An exact KV match wins; on duplicate KV samples the first one in catalog
// order is used. Otherwise the table is sorted ascending by KV and the motor
// KV is linearly interpolated between the bracketing samples, or linearly
// extrapolated through the origin past either end. Result is always >= 0 for
// positive KV and non-negative calibration thrusts.
func ThrustPerMotor(motor *core.Motor, prop *core.Propeller) float64 {
	if motor == nil || prop == nil || len(prop.ThrustData) == 0 {
		return 0
	}

	for _, sample := range prop.ThrustData {
		if sample.KV == motor.KV {
			return sample.Thrust
		}
	}

	sorted := make([]core.ThrustPoint, len(prop.ThrustData))
	copy(sorted, prop.ThrustData)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].KV < sorted[j].KV })

	kv := float64(motor.KV)
	lowest, highest := sorted[0], sorted[len(sorted)-1]

	if kv < float64(lowest.KV) {
		return lowest.Thrust * kv / float64(lowest.KV)
	}
	if kv > float64(highest.KV) {
		return highest.Thrust * kv / float64(highest.KV)
	}

	for i := 0; i < len(sorted)-1; i++ {
		a, b := sorted[i], sorted[i+1]
		if float64(a.KV) <= kv && kv <= float64(b.KV) {
			t := (kv - float64(a.KV)) / float64(b.KV-a.KV)
			return a.Thrust + t*(b.Thrust-a.Thrust)
		}
	}

	return 0
}
