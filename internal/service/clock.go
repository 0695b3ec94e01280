package service

import "time"

// Clock supplies the current time. Injected so report defaults are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystemClock returns a Clock backed by the system time.
func NewSystemClock() Clock { return systemClock{} }
