// pkg/core/components.go
package core

// VoltageRange bounds the supply voltage a component accepts.
type VoltageRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Motor represents a brushless motor from the catalog.
type Motor struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	KV         int          `json:"kv"` // RPM per volt
	Weight     float64      `json:"weight"`
	MaxCurrent float64      `json:"maxCurrent"` // amps
	Voltage    VoltageRange `json:"voltage"`
	Size       string       `json:"size"` // stator size, e.g. 2207
	Price      float64      `json:"price"`
}

// ThrustPoint is one calibration sample: full-throttle thrust in grams for a
// motor of the given KV.
type ThrustPoint struct {
	KV     int     `json:"kv"`
	Thrust float64 `json:"thrust"`
}

// Propeller represents a propeller with its thrust calibration table.
// ThrustData order is the catalog-given order; exact-KV lookups take the
// first match, so duplicate KV samples resolve by position.
type Propeller struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Size       float64       `json:"size"`  // inches
	Pitch      float64       `json:"pitch"` // inches
	BladeCount int           `json:"bladeCount"`
	Weight     float64       `json:"weight"` // grams, per prop
	Material   string        `json:"material"`
	Price      float64       `json:"price"`
	ThrustData []ThrustPoint `json:"thrustData"`
}

// ESC represents an electronic speed controller. CurrentRating is continuous
// amps per motor channel.
type ESC struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Manufacturer  string       `json:"manufacturer"`
	CurrentRating float64      `json:"currentRating"`
	BurstCurrent  float64      `json:"burstCurrent"`
	Weight        float64      `json:"weight"`
	Voltage       VoltageRange `json:"voltage"`
	Protocols     []string     `json:"protocol"`
	Price         float64      `json:"price"`
}

// FlightController represents a flight controller board.
type FlightController struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
	Processor    string   `json:"processor"`
	Weight       float64  `json:"weight"`
	Firmware     []string `json:"firmware"`
	IMU          string   `json:"imu"`
	MaxVoltage   float64  `json:"maxVoltage"`
	Features     []string `json:"features"`
	Price        float64  `json:"price"`
}

// Frame represents an airframe. Size is the wheelbase in mm.
type Frame struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Size        int     `json:"size"`
	Weight      float64 `json:"weight"`
	Material    string  `json:"material"`
	MotorCount  int     `json:"motorCount"`
	MaxPropSize float64 `json:"maxPropSize"` // inches
	StackHeight float64 `json:"stackHeight"` // mm
	Price       float64 `json:"price"`
}

// DischargePoint maps remaining charge percentage to terminal voltage.
type DischargePoint struct {
	Percentage float64 `json:"percentage"` // 0..100
	Voltage    float64 `json:"voltage"`
}

// Battery represents a LiPo pack. DischargeProfile is expected sorted by
// descending percentage; the engine stable-sorts a copy on entry, so
// duplicate percentages keep their given relative order. Behavior for
// profiles that violate this precondition in other ways is unspecified.
type Battery struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Capacity         int              `json:"capacity"` // mAh
	Voltage          float64          `json:"voltage"`  // nominal volts
	Cells            int              `json:"cells"`
	CRating          int              `json:"cRating"`
	Weight           float64          `json:"weight"`
	DischargeProfile []DischargePoint `json:"dischargeProfile"`
	Price            float64          `json:"price"`
}

// Receiver represents a radio receiver. CurrentDraw is in mA.
type Receiver struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Protocol    string  `json:"protocol"`
	Weight      float64 `json:"weight"`
	CurrentDraw float64 `json:"currentDraw"`
	Channels    int     `json:"channels"`
	Price       float64 `json:"price"`
}
