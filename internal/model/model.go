// Package model defines the GORM persistence models for the component
// catalog and saved builds. The engine never sees these; convert maps them
// to and from the pkg/core value types.
package model

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// DatabaseModels lists every struct that maps to a table, in migration
// order.
var DatabaseModels = []interface{}{
	&Motor{},
	&Propeller{},
	&ESC{},
	&FlightController{},
	&Frame{},
	&Battery{},
	&Receiver{},
	&BuildConfig{},
}

// VoltageRange is embedded in motor and ESC rows.
type VoltageRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Motor is a catalog motor row.
type Motor struct {
	ID         string       `json:"id" gorm:"primarykey;size:64"`
	Name       string       `json:"name" gorm:"size:127"`
	KV         int          `json:"kv"`
	Weight     float64      `json:"weight"`
	MaxCurrent float64      `json:"maxCurrent"`
	Voltage    VoltageRange `json:"voltage" gorm:"embedded;embeddedPrefix:voltage_"`
	Size       string       `json:"size" gorm:"size:16"`
	Price      float64      `json:"price"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func (*Motor) TableName() string {
	return "motors"
}

// Propeller is a catalog propeller row. ThrustData holds the calibration
// samples as JSON in catalog order, which exact-KV lookups depend on.
type Propeller struct {
	ID         string         `json:"id" gorm:"primarykey;size:64"`
	Name       string         `json:"name" gorm:"size:127"`
	Size       float64        `json:"size"`
	Pitch      float64        `json:"pitch"`
	BladeCount int            `json:"bladeCount"`
	Weight     float64        `json:"weight"`
	Material   string         `json:"material" gorm:"size:64"`
	Price      float64        `json:"price"`
	ThrustData datatypes.JSON `json:"thrustData" gorm:"default:'[]'"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (*Propeller) TableName() string {
	return "propellers"
}

// ESC is a catalog speed controller row.
type ESC struct {
	ID            string         `json:"id" gorm:"primarykey;size:64"`
	Name          string         `json:"name" gorm:"size:127"`
	Manufacturer  string         `json:"manufacturer" gorm:"size:64"`
	CurrentRating float64        `json:"currentRating"`
	BurstCurrent  float64        `json:"burstCurrent"`
	Weight        float64        `json:"weight"`
	Voltage       VoltageRange   `json:"voltage" gorm:"embedded;embeddedPrefix:voltage_"`
	Protocols     datatypes.JSON `json:"protocol" gorm:"default:'[]'"`
	Price         float64        `json:"price"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (*ESC) TableName() string {
	return "escs"
}

// FlightController is a catalog flight controller row.
type FlightController struct {
	ID           string         `json:"id" gorm:"primarykey;size:64"`
	Name         string         `json:"name" gorm:"size:127"`
	Manufacturer string         `json:"manufacturer" gorm:"size:64"`
	Processor    string         `json:"processor" gorm:"size:64"`
	Weight       float64        `json:"weight"`
	Firmware     datatypes.JSON `json:"firmware" gorm:"default:'[]'"`
	IMU          string         `json:"imu" gorm:"size:64"`
	MaxVoltage   float64        `json:"maxVoltage"`
	Features     datatypes.JSON `json:"features" gorm:"default:'[]'"`
	Price        float64        `json:"price"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (*FlightController) TableName() string {
	return "flight_controllers"
}

// Frame is a catalog airframe row.
type Frame struct {
	ID          string    `json:"id" gorm:"primarykey;size:64"`
	Name        string    `json:"name" gorm:"size:127"`
	Size        int       `json:"size"`
	Weight      float64   `json:"weight"`
	Material    string    `json:"material" gorm:"size:64"`
	MotorCount  int       `json:"motorCount" gorm:"default:4"`
	MaxPropSize float64   `json:"maxPropSize"`
	StackHeight float64   `json:"stackHeight"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (*Frame) TableName() string {
	return "frames"
}

// Battery is a catalog battery row. DischargeProfile holds the calibration
// curve as JSON.
type Battery struct {
	ID               string         `json:"id" gorm:"primarykey;size:64"`
	Name             string         `json:"name" gorm:"size:127"`
	Capacity         int            `json:"capacity"`
	Voltage          float64        `json:"voltage"`
	Cells            int            `json:"cells"`
	CRating          int            `json:"cRating"`
	Weight           float64        `json:"weight"`
	DischargeProfile datatypes.JSON `json:"dischargeProfile" gorm:"default:'[]'"`
	Price            float64        `json:"price"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func (*Battery) TableName() string {
	return "batteries"
}

// Receiver is a catalog receiver row.
type Receiver struct {
	ID          string    `json:"id" gorm:"primarykey;size:64"`
	Name        string    `json:"name" gorm:"size:127"`
	Protocol    string    `json:"protocol" gorm:"size:64"`
	Weight      float64   `json:"weight"`
	CurrentDraw float64   `json:"currentDraw"`
	Channels    int       `json:"channels"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (*Receiver) TableName() string {
	return "receivers"
}

// BuildConfig is a saved build row: component references by ID. NULL means
// the slot is empty.
type BuildConfig struct {
	ID                 string         `json:"id" gorm:"primarykey;size:64"`
	Name               string         `json:"name" gorm:"size:127"`
	Description        string         `json:"description" gorm:"size:2000"`
	FrameID            sql.NullString `json:"frameId" gorm:"size:64"`
	MotorID            sql.NullString `json:"motorId" gorm:"size:64"`
	PropellerID        sql.NullString `json:"propellerId" gorm:"size:64"`
	ESCID              sql.NullString `json:"escId" gorm:"size:64"`
	FlightControllerID sql.NullString `json:"flightControllerId" gorm:"size:64"`
	BatteryID          sql.NullString `json:"batteryId" gorm:"size:64"`
	ReceiverID         sql.NullString `json:"receiverId" gorm:"size:64"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func (*BuildConfig) TableName() string {
	return "build_configs"
}
