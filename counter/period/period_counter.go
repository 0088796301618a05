package period

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/randx/counter"
)

var _ counter.Counter = &periodCounter{}

type periodCounter struct {
	value      int64
	ratePerSec int64

	period    time.Duration
	now       func() time.Time
	lastValue int64
	lastTime  time.Time
	mut       sync.Mutex
}

// NewPeriodCounter returns a Counter whose rate is recomputed at most once
// per period, on Add.
func NewPeriodCounter(period time.Duration) counter.Counter {
	return newPeriodCounter(period, time.Now)
}

func newPeriodCounter(period time.Duration, now func() time.Time) *periodCounter {
	return &periodCounter{
		period:   period,
		now:      now,
		lastTime: now(),
	}
}

// Value implements Counter.
func (c *periodCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// RatePerSec implements Counter.
func (c *periodCounter) RatePerSec() int64 {
	return atomic.LoadInt64(&c.ratePerSec)
}

// Add implements Counter.
func (c *periodCounter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
	c.check()
}

func (c *periodCounter) check() {
	c.mut.Lock()
	defer c.mut.Unlock()

	now := c.now()
	elapsed := now.Sub(c.lastTime)
	if elapsed < c.period {
		return
	}

	value := c.Value()
	atomic.StoreInt64(&c.ratePerSec, int64(float64(value-c.lastValue)/elapsed.Seconds()))
	c.lastValue = value
	c.lastTime = now
}
