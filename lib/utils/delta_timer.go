package utils

import "time"

// DeltaTimer measures the time between consecutive frames.
type DeltaTimer struct {
	time.Time
}

// Next returns the time since the previous call, or 0 on the first call.
func (d *DeltaTimer) Next() time.Duration {
	// one timestamp per call so rounding errors don't pile up
	now := time.Now()

	defer d.Set(now)
	if d.IsZero() {
		return 0
	}
	return now.Sub(d.Time)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.Time = t
}
