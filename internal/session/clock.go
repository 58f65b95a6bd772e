package session

import "time"

// Timer is a pending one-shot action. Stop reports whether the call cancelled
// the firing; a false return means the callback already ran or was stopped.
type Timer interface {
	Stop() bool
}

// Clock supplies time and deferred execution to a Session so that debounce
// behavior can be tested without real waits.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns the wall-clock implementation used outside tests.
func SystemClock() Clock {
	return systemClock{}
}
