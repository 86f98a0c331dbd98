// pkg/core/build.go
package core

import "time"

// DefaultMotorCount is assumed when no frame is selected.
const DefaultMotorCount = 4

// Components holds at most one selected part of each kind. Nil means the
// slot is empty.
type Components struct {
	Frame            *Frame            `json:"frame,omitempty"`
	Motor            *Motor            `json:"motors,omitempty"`
	Propeller        *Propeller        `json:"propellers,omitempty"`
	ESC              *ESC              `json:"esc,omitempty"`
	FlightController *FlightController `json:"flightController,omitempty"`
	Battery          *Battery          `json:"battery,omitempty"`
	Receiver         *Receiver         `json:"receiver,omitempty"`
}

// MotorCount returns the frame's motor count, or DefaultMotorCount when no
// frame is selected.
func (c Components) MotorCount() int {
	if c.Frame != nil && c.Frame.MotorCount > 0 {
		return c.Frame.MotorCount
	}
	return DefaultMotorCount
}

// Build is a fully-hydrated drone build: every selected slot carries the
// complete catalog record. It is read-only input to the analysis engine.
type Build struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Components  Components `json:"components"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ComponentIDs references catalog parts by ID. Empty string means the slot
// is empty.
type ComponentIDs struct {
	FrameID            string `json:"frameId,omitempty"`
	MotorID            string `json:"motorId,omitempty"`
	PropellerID        string `json:"propellerId,omitempty"`
	ESCID              string `json:"escId,omitempty"`
	FlightControllerID string `json:"flightControllerId,omitempty"`
	BatteryID          string `json:"batteryId,omitempty"`
	ReceiverID         string `json:"receiverId,omitempty"`
}

// BuildConfig is the stored form of a build: component references by ID,
// resolved to a Build by hydration.
type BuildConfig struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	ComponentIDs ComponentIDs `json:"componentIds"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
