package apply

import (
	"sync"
	"time"
)

// Countdown drives the post-submission redirect: tick once a second, fire
// done at zero. Stop cancels it, so an unmounted view never navigates.
type Countdown struct {
	mu      sync.Mutex
	stopped bool
	stop    chan struct{}
}

// StartCountdown counts down from seconds. tick receives the remaining
// seconds after each elapsed second (may be nil); done fires when the count
// reaches zero.
func StartCountdown(seconds int, tick func(remaining int), done func()) *Countdown {
	c := &Countdown{stop: make(chan struct{})}

	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		remaining := seconds
		for remaining > 0 {
			select {
			case <-c.stop:
				return
			case <-t.C:
				remaining--
				if tick != nil {
					tick(remaining)
				}
			}
		}
		if done != nil {
			done()
		}
	}()
	return c
}

// Stop cancels the countdown. Safe to call more than once.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.stopped {
		c.stopped = true
		close(c.stop)
	}
}
