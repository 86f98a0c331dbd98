package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotorbench/rotorbench/pkg/core"
)

func TestPropellerRoundTrip(t *testing.T) {
	in := core.Propeller{
		ID:         "prop-1",
		Name:       "5x4.3x3",
		Size:       5,
		Pitch:      4.3,
		BladeCount: 3,
		Weight:     4.2,
		Material:   "Polycarbonate",
		Price:      2.99,
		ThrustData: []core.ThrustPoint{
			{KV: 2600, Thrust: 1350},
			{KV: 1800, Thrust: 880},
			{KV: 2400, Thrust: 1250},
		},
	}

	out := PropellerToCore(CoreToPropeller(in))

	assert.Equal(t, in, out)
	// Catalog order of thrust samples survives the JSON column; exact-KV
	// duplicate resolution depends on it.
	require.Len(t, out.ThrustData, 3)
	assert.Equal(t, 2600, out.ThrustData[0].KV)
}

func TestBatteryRoundTrip(t *testing.T) {
	in := core.Battery{
		ID:       "battery-1",
		Name:     "1300mAh 6S",
		Capacity: 1300,
		Voltage:  22.2,
		Cells:    6,
		CRating:  120,
		Weight:   230,
		Price:    32.5,
		DischargeProfile: []core.DischargePoint{
			{Percentage: 100, Voltage: 25.2},
			{Percentage: 50, Voltage: 22.4},
			{Percentage: 0, Voltage: 18.0},
		},
	}

	assert.Equal(t, in, BatteryToCore(CoreToBattery(in)))
}

func TestMotorRoundTrip(t *testing.T) {
	in := core.Motor{
		ID:         "motor-1",
		Name:       "2306 1750KV",
		KV:         1750,
		Weight:     34,
		MaxCurrent: 38,
		Voltage:    core.VoltageRange{Min: 14.8, Max: 25.2},
		Size:       "2306",
		Price:      23,
	}
	assert.Equal(t, in, MotorToCore(CoreToMotor(in)))
}

func TestESCRoundTrip(t *testing.T) {
	in := core.ESC{
		ID:            "esc-1",
		Name:          "55A",
		Manufacturer:  "Holybro",
		CurrentRating: 55,
		BurstCurrent:  65,
		Weight:        18,
		Voltage:       core.VoltageRange{Min: 11.1, Max: 25.2},
		Protocols:     []string{"DShot600", "DShot300"},
		Price:         70,
	}
	assert.Equal(t, in, ESCToCore(CoreToESC(in)))
}

func TestFlightControllerRoundTrip(t *testing.T) {
	in := core.FlightController{
		ID:           "fc-1",
		Name:         "F7",
		Manufacturer: "Matek",
		Processor:    "STM32F722",
		Weight:       9,
		Firmware:     []string{"Betaflight", "INAV"},
		IMU:          "ICM42688",
		MaxVoltage:   26,
		Features:     []string{"OSD"},
		Price:        45,
	}
	assert.Equal(t, in, FlightControllerToCore(CoreToFlightController(in)))
}

func TestFrameAndReceiverRoundTrip(t *testing.T) {
	frame := core.Frame{
		ID: "frame-1", Name: "220", Size: 220, Weight: 98,
		Material: "Carbon Fiber", MotorCount: 4, MaxPropSize: 5.5,
		StackHeight: 20, Price: 55,
	}
	assert.Equal(t, frame, FrameToCore(CoreToFrame(frame)))

	rx := core.Receiver{
		ID: "rx-1", Name: "EP2", Protocol: "CRSF", Weight: 1.5,
		CurrentDraw: 40, Channels: 12, Price: 18,
	}
	assert.Equal(t, rx, ReceiverToCore(CoreToReceiver(rx)))
}

func TestBuildConfigRoundTrip(t *testing.T) {
	in := core.BuildConfig{
		ID:          "build-1",
		Name:        "Bando Basher",
		Description: "weekend build",
		ComponentIDs: core.ComponentIDs{
			FrameID:   "frame-1",
			MotorID:   "motor-1",
			BatteryID: "battery-1",
			// Remaining slots deliberately empty.
		},
	}

	row := CoreToBuildConfig(in)
	assert.True(t, row.FrameID.Valid)
	assert.False(t, row.PropellerID.Valid)

	assert.Equal(t, in, BuildConfigToCore(row))
}

func TestEmptySlicesBecomeEmptyJSONArrays(t *testing.T) {
	row := CoreToESC(core.ESC{ID: "esc-2"})
	assert.Equal(t, "[]", string(row.Protocols))

	back := ESCToCore(row)
	assert.Nil(t, back.Protocols)

	fcRow := CoreToFlightController(core.FlightController{ID: "fc-2"})
	assert.Equal(t, "[]", string(fcRow.Firmware))
	assert.Equal(t, "[]", string(fcRow.Features))

	fcBack := FlightControllerToCore(fcRow)
	assert.Nil(t, fcBack.Firmware)
	assert.Nil(t, fcBack.Features)
}
