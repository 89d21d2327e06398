package pomodoro

import (
	"sync"
	"time"
)

// Cancel detaches a tick source. Calling it more than once is safe.
type Cancel func()

// Scheduler invokes callback every interval until the returned Cancel is
// called. Implementations must not invoke callback synchronously from the
// Scheduler call itself.
type Scheduler func(interval time.Duration, callback func()) Cancel

// TickerScheduler is the wall-clock Scheduler backed by a time.Ticker.
func TickerScheduler(interval time.Duration, callback func()) Cancel {
	ticker := time.NewTicker(interval)
	stopCh := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				callback()
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}
