// pkg/core/catalog.go
package core

// Catalog is the complete set of available components, grouped by kind.
type Catalog struct {
	Motors            []Motor            `json:"motors"`
	Propellers        []Propeller        `json:"propellers"`
	ESCs              []ESC              `json:"escs"`
	FlightControllers []FlightController `json:"flightControllers"`
	Frames            []Frame            `json:"frames"`
	Batteries         []Battery          `json:"batteries"`
	Receivers         []Receiver         `json:"receivers"`
}
