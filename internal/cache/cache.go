package cache

import (
	"sync"

	"github.com/rotorbench/rotorbench/pkg/core"
)

// ComponentCache caches catalog components after their first load to avoid
// repeated backend reads while hydrating builds.
type ComponentCache struct {
	m                 sync.Mutex
	Motors            map[string]core.Motor
	Propellers        map[string]core.Propeller
	ESCs              map[string]core.ESC
	FlightControllers map[string]core.FlightController
	Frames            map[string]core.Frame
	Batteries         map[string]core.Battery
	Receivers         map[string]core.Receiver
}

func NewComponentCache() *ComponentCache {
	c := &ComponentCache{}
	c.reset()
	return c
}

func (c *ComponentCache) reset() {
	c.Motors = make(map[string]core.Motor)
	c.Propellers = make(map[string]core.Propeller)
	c.ESCs = make(map[string]core.ESC)
	c.FlightControllers = make(map[string]core.FlightController)
	c.Frames = make(map[string]core.Frame)
	c.Batteries = make(map[string]core.Battery)
	c.Receivers = make(map[string]core.Receiver)
}

func (c *ComponentCache) Reset() {
	c.m.Lock()
	defer c.m.Unlock()
	c.reset()
}

func (c *ComponentCache) GetMotor(id string) (core.Motor, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	v, ok := c.Motors[id]
	return v, ok
}

func (c *ComponentCache) AddMotor(m core.Motor) {
	c.m.Lock()
	defer c.m.Unlock()
	c.Motors[m.ID] = m
}

func (c *ComponentCache) GetPropeller(id string) (core.Propeller, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	v, ok := c.Propellers[id]
	return v, ok
}

func (c *ComponentCache) AddPropeller(p core.Propeller) {
	c.m.Lock()
	defer c.m.Unlock()
	c.Propellers[p.ID] = p
}

func (c *ComponentCache) GetESC(id string) (core.ESC, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	v, ok := c.ESCs[id]
	return v, ok
}

func (c *ComponentCache) AddESC(e core.ESC) {
	c.m.Lock()
	defer c.m.Unlock()
	c.ESCs[e.ID] = e
}

func (c *ComponentCache) GetFlightController(id string) (core.FlightController, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	v, ok := c.FlightControllers[id]
	return v, ok
}

func (c *ComponentCache) AddFlightController(f core.FlightController) {
	c.m.Lock()
	defer c.m.Unlock()
	c.FlightControllers[f.ID] = f
}

func (c *ComponentCache) GetFrame(id string) (core.Frame, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	v, ok := c.Frames[id]
	return v, ok
}

func (c *ComponentCache) AddFrame(f core.Frame) {
	c.m.Lock()
	defer c.m.Unlock()
	c.Frames[f.ID] = f
}

func (c *ComponentCache) GetBattery(id string) (core.Battery, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	v, ok := c.Batteries[id]
	return v, ok
}

func (c *ComponentCache) AddBattery(b core.Battery) {
	c.m.Lock()
	defer c.m.Unlock()
	c.Batteries[b.ID] = b
}

func (c *ComponentCache) GetReceiver(id string) (core.Receiver, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	v, ok := c.Receivers[id]
	return v, ok
}

func (c *ComponentCache) AddReceiver(r core.Receiver) {
	c.m.Lock()
	defer c.m.Unlock()
	c.Receivers[r.ID] = r
}
