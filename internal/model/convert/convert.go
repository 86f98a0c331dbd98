// Package convert provides functions to convert between GORM models and
// core models.
package convert

import (
	"encoding/json"

	"github.com/rotorbench/rotorbench/internal/model"
	"github.com/rotorbench/rotorbench/pkg/core"
)

// stringsFromJSON decodes a JSON string array column; bad or empty data
// yields nil.
func stringsFromJSON(data []byte) []string {
	var out []string
	if len(data) > 0 {
		_ = json.Unmarshal(data, &out)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// MotorToCore converts a GORM Motor to a core.Motor.
func MotorToCore(m model.Motor) core.Motor {
	return core.Motor{
		ID:         m.ID,
		Name:       m.Name,
		KV:         m.KV,
		Weight:     m.Weight,
		MaxCurrent: m.MaxCurrent,
		Voltage:    core.VoltageRange{Min: m.Voltage.Min, Max: m.Voltage.Max},
		Size:       m.Size,
		Price:      m.Price,
	}
}

// PropellerToCore converts a GORM Propeller to a core.Propeller, decoding
// the thrust calibration JSON in stored order.
func PropellerToCore(p model.Propeller) core.Propeller {
	var thrustData []core.ThrustPoint
	if len(p.ThrustData) > 0 {
		_ = json.Unmarshal(p.ThrustData, &thrustData)
	}

	return core.Propeller{
		ID:         p.ID,
		Name:       p.Name,
		Size:       p.Size,
		Pitch:      p.Pitch,
		BladeCount: p.BladeCount,
		Weight:     p.Weight,
		Material:   p.Material,
		Price:      p.Price,
		ThrustData: thrustData,
	}
}

// ESCToCore converts a GORM ESC to a core.ESC.
func ESCToCore(e model.ESC) core.ESC {
	return core.ESC{
		ID:            e.ID,
		Name:          e.Name,
		Manufacturer:  e.Manufacturer,
		CurrentRating: e.CurrentRating,
		BurstCurrent:  e.BurstCurrent,
		Weight:        e.Weight,
		Voltage:       core.VoltageRange{Min: e.Voltage.Min, Max: e.Voltage.Max},
		Protocols:     stringsFromJSON(e.Protocols),
		Price:         e.Price,
	}
}

// FlightControllerToCore converts a GORM FlightController to a
// core.FlightController.
func FlightControllerToCore(f model.FlightController) core.FlightController {
	return core.FlightController{
		ID:           f.ID,
		Name:         f.Name,
		Manufacturer: f.Manufacturer,
		Processor:    f.Processor,
		Weight:       f.Weight,
		Firmware:     stringsFromJSON(f.Firmware),
		IMU:          f.IMU,
		MaxVoltage:   f.MaxVoltage,
		Features:     stringsFromJSON(f.Features),
		Price:        f.Price,
	}
}

// FrameToCore converts a GORM Frame to a core.Frame.
func FrameToCore(f model.Frame) core.Frame {
	return core.Frame{
		ID:          f.ID,
		Name:        f.Name,
		Size:        f.Size,
		Weight:      f.Weight,
		Material:    f.Material,
		MotorCount:  f.MotorCount,
		MaxPropSize: f.MaxPropSize,
		StackHeight: f.StackHeight,
		Price:       f.Price,
	}
}

// BatteryToCore converts a GORM Battery to a core.Battery, decoding the
// discharge profile JSON.
func BatteryToCore(b model.Battery) core.Battery {
	var profile []core.DischargePoint
	if len(b.DischargeProfile) > 0 {
		_ = json.Unmarshal(b.DischargeProfile, &profile)
	}

	return core.Battery{
		ID:               b.ID,
		Name:             b.Name,
		Capacity:         b.Capacity,
		Voltage:          b.Voltage,
		Cells:            b.Cells,
		CRating:          b.CRating,
		Weight:           b.Weight,
		DischargeProfile: profile,
		Price:            b.Price,
	}
}

// ReceiverToCore converts a GORM Receiver to a core.Receiver.
func ReceiverToCore(r model.Receiver) core.Receiver {
	return core.Receiver{
		ID:          r.ID,
		Name:        r.Name,
		Protocol:    r.Protocol,
		Weight:      r.Weight,
		CurrentDraw: r.CurrentDraw,
		Channels:    r.Channels,
		Price:       r.Price,
	}
}

// BuildConfigToCore converts a GORM BuildConfig to a core.BuildConfig.
// NULL component references become empty strings.
func BuildConfigToCore(b model.BuildConfig) core.BuildConfig {
	return core.BuildConfig{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		ComponentIDs: core.ComponentIDs{
			FrameID:            b.FrameID.String,
			MotorID:            b.MotorID.String,
			PropellerID:        b.PropellerID.String,
			ESCID:              b.ESCID.String,
			FlightControllerID: b.FlightControllerID.String,
			BatteryID:          b.BatteryID.String,
			ReceiverID:         b.ReceiverID.String,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
