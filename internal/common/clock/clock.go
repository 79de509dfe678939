package clock

import "time"

// NowFunc lets tests pin the clock.
type NowFunc func() time.Time
