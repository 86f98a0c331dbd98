package analysis

import (
	"github.com/rotorbench/rotorbench/pkg/core"
)

// Catalog fixtures modeled on a typical 5-inch freestyle build.

func testMotor() *core.Motor {
	return &core.Motor{
		ID:         "motor-2207-2400",
		Name:       "2207 2400KV",
		KV:         2400,
		Weight:     30,
		MaxCurrent: 30,
		Voltage:    core.VoltageRange{Min: 14.8, Max: 25.2},
		Size:       "2207",
		Price:      20,
	}
}

func testPropeller() *core.Propeller {
	return &core.Propeller{
		ID:         "prop-51466",
		Name:       "5.1x4.66x3",
		Size:       5.1,
		Pitch:      4.66,
		BladeCount: 3,
		Weight:     5,
		Material:   "Polycarbonate",
		Price:      3,
		ThrustData: []core.ThrustPoint{
			{KV: 1800, Thrust: 900},
			{KV: 2400, Thrust: 1300},
			{KV: 2700, Thrust: 1450},
		},
	}
}

func testESC() *core.ESC {
	return &core.ESC{
		ID:            "esc-45a",
		Name:          "45A 4-in-1",
		Manufacturer:  "T-Motor",
		CurrentRating: 45,
		BurstCurrent:  55,
		Weight:        15,
		Voltage:       core.VoltageRange{Min: 7.4, Max: 25.2},
		Protocols:     []string{"DShot600"},
		Price:         60,
	}
}

func testFlightController() *core.FlightController {
	return &core.FlightController{
		ID:           "fc-f7",
		Name:         "F7 HD",
		Manufacturer: "Matek",
		Processor:    "STM32F722",
		Weight:       10,
		Firmware:     []string{"Betaflight"},
		IMU:          "MPU6000",
		MaxVoltage:   25.2,
		Features:     []string{"OSD", "Blackbox"},
		Price:        40,
	}
}

func testFrame() *core.Frame {
	return &core.Frame{
		ID:          "frame-220",
		Name:        "220mm Freestyle",
		Size:        220,
		Weight:      100,
		Material:    "Carbon Fiber",
		MotorCount:  4,
		MaxPropSize: 5.5,
		StackHeight: 20,
		Price:       50,
	}
}

func testBattery() *core.Battery {
	return &core.Battery{
		ID:       "battery-1500-4s",
		Name:     "1500mAh 4S",
		Capacity: 1500,
		Voltage:  14.8,
		Cells:    4,
		CRating:  100,
		Weight:   200,
		Price:    25,
		DischargeProfile: []core.DischargePoint{
			{Percentage: 100, Voltage: 16.8},
			{Percentage: 80, Voltage: 15.5},
			{Percentage: 60, Voltage: 15.0},
			{Percentage: 40, Voltage: 14.4},
			{Percentage: 20, Voltage: 13.6},
			{Percentage: 0, Voltage: 12.0},
		},
	}
}

func testReceiver() *core.Receiver {
	return &core.Receiver{
		ID:          "rx-elrs",
		Name:        "ELRS EP1",
		Protocol:    "CRSF",
		Weight:      2,
		CurrentDraw: 50,
		Channels:    8,
		Price:       15,
	}
}

// completeBuild assembles a build with all seven components selected.
func completeBuild() core.Build {
	return core.Build{
		ID:   "build-1",
		Name: "Test Freestyle",
		Components: core.Components{
			Frame:            testFrame(),
			Motor:            testMotor(),
			Propeller:        testPropeller(),
			ESC:              testESC(),
			FlightController: testFlightController(),
			Battery:          testBattery(),
			Receiver:         testReceiver(),
		},
	}
}
