package ratelimit

import "time"

// Pacer spaces out consecutive requests. Wait blocks until the next request
// may be sent.
type Pacer interface {
	Wait()
}

// FixedDelay is a Pacer that sleeps a constant interval on every Wait call.
// The collector deliberately serializes all network activity through fixed
// delays instead of a token bucket: the source server's implied rate
// tolerance is "one request at a time, spaced out", not "n per minute".
type FixedDelay struct {
	delay time.Duration
	sleep func(time.Duration)
}

// NewFixedDelay creates a pacer with the given interval. A zero or negative
// interval makes Wait a no-op.
func NewFixedDelay(delay time.Duration) *FixedDelay {
	return &FixedDelay{
		delay: delay,
		sleep: time.Sleep,
	}
}

// Wait blocks for the configured interval.
func (p *FixedDelay) Wait() {
	if p.delay <= 0 {
		return
	}
	p.sleep(p.delay)
}

// Delay returns the configured interval.
func (p *FixedDelay) Delay() time.Duration {
	return p.delay
}

// Nop is a Pacer that never waits.
type Nop struct{}

func (Nop) Wait() {}
