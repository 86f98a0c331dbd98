package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueuePushPop(t *testing.T) {
	q := New[string]()
	assert.True(t, q.Empty())

	q.Push("build-1", "build-2")
	assert.Equal(t, 2, q.Len())

	item, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, "build-1", item)

	item, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, "build-2", item)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueueClear(t *testing.T) {
	q := New[int]()
	q.Push(1, 2)
	q.Clear()
	assert.Equal(t, 0, q.Len())
}
