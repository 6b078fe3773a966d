package listview

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32

	for i := 0; i < 10; i++ {
		d.Trigger(func() { calls.Add(1) })
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "a burst fires exactly once")
}

func TestDebouncer_ZeroDelayIsSynchronous(t *testing.T) {
	d := NewDebouncer(0)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Trigger(func() { calls.Add(1) })

	assert.Equal(t, int32(2), calls.Load())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}
