package builder

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesTriggers(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var fired int32

	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt32(&fired, 1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired), "rapid triggers must collapse into one run")
}

func TestDebouncerFiresAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	done := make(chan struct{})

	d.Trigger(func() { close(done) })

	select {
	case <-done:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("debounced function never fired")
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var fired int32

	d.Trigger(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestDebouncerReusableAfterStop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var fired int32

	d.Trigger(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()
	d.Trigger(func() { atomic.AddInt32(&fired, 1) })

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}
