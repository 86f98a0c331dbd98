package convert

import (
	"database/sql"
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/rotorbench/rotorbench/internal/model"
	"github.com/rotorbench/rotorbench/pkg/core"
)

// stringsToJSON encodes a string slice for a JSON column, defaulting to an
// empty array.
func stringsToJSON(values []string) datatypes.JSON {
	if len(values) == 0 {
		return datatypes.JSON("[]")
	}
	data, _ := json.Marshal(values)
	return datatypes.JSON(data)
}

// nullString maps an empty component reference to NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CoreToMotor converts a core.Motor to a GORM model.Motor.
func CoreToMotor(m core.Motor) model.Motor {
	return model.Motor{
		ID:         m.ID,
		Name:       m.Name,
		KV:         m.KV,
		Weight:     m.Weight,
		MaxCurrent: m.MaxCurrent,
		Voltage:    model.VoltageRange{Min: m.Voltage.Min, Max: m.Voltage.Max},
		Size:       m.Size,
		Price:      m.Price,
	}
}

// CoreToPropeller converts a core.Propeller to a GORM model.Propeller,
// preserving thrust sample order.
func CoreToPropeller(p core.Propeller) model.Propeller {
	thrustData := datatypes.JSON("[]")
	if len(p.ThrustData) > 0 {
		data, _ := json.Marshal(p.ThrustData)
		thrustData = datatypes.JSON(data)
	}

	return model.Propeller{
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

// CoreToESC converts a core.ESC to a GORM model.ESC.
func CoreToESC(e core.ESC) model.ESC {
	return model.ESC{
		ID:            e.ID,
		Name:          e.Name,
		Manufacturer:  e.Manufacturer,
		CurrentRating: e.CurrentRating,
		BurstCurrent:  e.BurstCurrent,
		Weight:        e.Weight,
		Voltage:       model.VoltageRange{Min: e.Voltage.Min, Max: e.Voltage.Max},
		Protocols:     stringsToJSON(e.Protocols),
		Price:         e.Price,
	}
}

// CoreToFlightController converts a core.FlightController to a GORM
// model.FlightController.
func CoreToFlightController(f core.FlightController) model.FlightController {
	return model.FlightController{
		ID:           f.ID,
		Name:         f.Name,
		Manufacturer: f.Manufacturer,
		Processor:    f.Processor,
		Weight:       f.Weight,
		Firmware:     stringsToJSON(f.Firmware),
		IMU:          f.IMU,
		MaxVoltage:   f.MaxVoltage,
		Features:     stringsToJSON(f.Features),
		Price:        f.Price,
	}
}

// CoreToFrame converts a core.Frame to a GORM model.Frame.
func CoreToFrame(f core.Frame) model.Frame {
	return model.Frame{
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

// CoreToBattery converts a core.Battery to a GORM model.Battery.
func CoreToBattery(b core.Battery) model.Battery {
	profile := datatypes.JSON("[]")
	if len(b.DischargeProfile) > 0 {
		data, _ := json.Marshal(b.DischargeProfile)
		profile = datatypes.JSON(data)
	}

	return model.Battery{
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

// CoreToReceiver converts a core.Receiver to a GORM model.Receiver.
func CoreToReceiver(r core.Receiver) model.Receiver {
	return model.Receiver{
		ID:          r.ID,
		Name:        r.Name,
		Protocol:    r.Protocol,
		Weight:      r.Weight,
		CurrentDraw: r.CurrentDraw,
		Channels:    r.Channels,
		Price:       r.Price,
	}
}

// CoreToBuildConfig converts a core.BuildConfig to a GORM
// model.BuildConfig.
func CoreToBuildConfig(b core.BuildConfig) model.BuildConfig {
	return model.BuildConfig{
		ID:                 b.ID,
		Name:               b.Name,
		Description:        b.Description,
		FrameID:            nullString(b.ComponentIDs.FrameID),
		MotorID:            nullString(b.ComponentIDs.MotorID),
		PropellerID:        nullString(b.ComponentIDs.PropellerID),
		ESCID:              nullString(b.ComponentIDs.ESCID),
		FlightControllerID: nullString(b.ComponentIDs.FlightControllerID),
		BatteryID:          nullString(b.ComponentIDs.BatteryID),
		ReceiverID:         nullString(b.ComponentIDs.ReceiverID),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
