// pkg/core/analysis.go
package core

// WeightRating classifies total build weight.
type WeightRating string

const (
	WeightLight  WeightRating = "light"
	WeightMedium WeightRating = "medium"
	WeightHeavy  WeightRating = "heavy"
)

// ThrustRating classifies thrust-to-weight ratio.
type ThrustRating string

const (
	ThrustPoor      ThrustRating = "poor"
	ThrustAdequate  ThrustRating = "adequate"
	ThrustGood      ThrustRating = "good"
	ThrustExcellent ThrustRating = "excellent"
)

// PerformanceRating pairs the categorical ratings of a scorecard.
type PerformanceRating struct {
	Weight         WeightRating `json:"weight"`
	ThrustToWeight ThrustRating `json:"thrustToWeight"`
}

// PerformanceMetrics is the static scorecard for a build.
type PerformanceMetrics struct {
	TotalWeight         float64           `json:"totalWeight"` // grams
	MaxThrust           float64           `json:"maxThrust"`   // grams
	ThrustToWeightRatio float64           `json:"thrustToWeightRatio"`
	PowerDraw           float64           `json:"powerDraw"` // watts at 50% throttle
	Rating              PerformanceRating `json:"rating"`
}

// DischargeDataPoint is one sample of the simulated battery discharge.
type DischargeDataPoint struct {
	Time              float64 `json:"time"` // minutes
	Voltage           float64 `json:"voltage"`
	RemainingCapacity float64 `json:"remainingCapacity"` // mAh
	CurrentDraw       float64 `json:"currentDraw"`       // amps
}

// ThrottleProfilePoint is one row of the throttle sweep table.
type ThrottleProfilePoint struct {
	Throttle float64 `json:"throttle"` // 0..1
	Thrust   float64 `json:"thrust"`   // grams
	Current  float64 `json:"current"`  // amps
	Power    float64 `json:"power"`    // watts
}

// FlightSimulation holds the derived flight profile. When the build lacks
// motor, battery, or propeller it is all zeros with empty slices.
type FlightSimulation struct {
	BatteryCapacity     float64                `json:"batteryCapacity"` // mAh
	AvgCurrentDraw      float64                `json:"avgCurrentDraw"`  // amps
	EstimatedFlightTime float64                `json:"estimatedFlightTime"` // minutes
	EstimatedRange      float64                `json:"estimatedRange"`      // km
	AvgSpeed            float64                `json:"avgSpeed"`            // km/h
	HoverTime           float64                `json:"hoverTime"`           // minutes
	MaxSpeed            float64                `json:"maxSpeed"`            // km/h
	Efficiency          float64                `json:"efficiency"`          // mAh per km
	DischargeData       []DischargeDataPoint   `json:"dischargeData"`
	ThrottleProfile     []ThrottleProfilePoint `json:"throttleProfile"`
}

// BuildAnalysis is the composite result of analyzing one build. A fresh
// value is produced per analysis; failure is represented in Errors and
// Warnings, never raised.
type BuildAnalysis struct {
	IsValid          bool               `json:"isValid"`
	Errors           []string           `json:"errors"`
	Warnings         []string           `json:"warnings"`
	Performance      PerformanceMetrics `json:"performance"`
	FlightSimulation FlightSimulation   `json:"flightSimulation"`
	TotalCost        float64            `json:"totalCost"`
}
