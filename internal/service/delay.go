package service

import "time"

// Delayer simulates the fixed operation latency the original UX observed.
// It is not rate limiting. Tests inject a no-op so suites run without
// real waiting.
type Delayer interface {
	Delay(d time.Duration)
}

type sleepDelayer struct{}

// Delay blocks for the full duration. Deliberately not cancelable: a
// login/register runs to completion once invoked.
func (sleepDelayer) Delay(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
