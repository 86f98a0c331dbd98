package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rotorbench/rotorbench/pkg/core"
)

func TestComponentCacheAddGet(t *testing.T) {
	c := NewComponentCache()

	_, ok := c.GetMotor("motor-1")
	assert.False(t, ok)

	c.AddMotor(core.Motor{ID: "motor-1", Name: "2207 1800KV", KV: 1800})
	m, ok := c.GetMotor("motor-1")
	assert.True(t, ok)
	assert.Equal(t, 1800, m.KV)

	c.AddBattery(core.Battery{ID: "battery-1", Capacity: 1300})
	b, ok := c.GetBattery("battery-1")
	assert.True(t, ok)
	assert.Equal(t, 1300, b.Capacity)
}

func TestComponentCacheReset(t *testing.T) {
	c := NewComponentCache()
	c.AddFrame(core.Frame{ID: "frame-1"})
	c.AddReceiver(core.Receiver{ID: "rx-1"})

	c.Reset()

	_, ok := c.GetFrame("frame-1")
	assert.False(t, ok)
	_, ok = c.GetReceiver("rx-1")
	assert.False(t, ok)
}
