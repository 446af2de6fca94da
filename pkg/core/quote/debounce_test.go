package quote

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var runs int32
	var last int32
	for i := 1; i <= 10; i++ {
		n := int32(i)
		d.Trigger(func() {
			atomic.AddInt32(&runs, 1)
			atomic.StoreInt32(&last, n)
		})
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs), "a burst must run once")
	assert.Equal(t, int32(10), atomic.LoadInt32(&last), "last write wins")
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var runs int32
	d.Trigger(func() { atomic.AddInt32(&runs, 1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&runs))
}
