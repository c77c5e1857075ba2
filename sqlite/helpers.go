package sqlite

import (
	"math"
	"time"
)

// mtime is stored as float seconds since the Unix epoch, matching the
// store's REAL column.

func timeToMtime(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

func mtimeToTime(f float64) time.Time {
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}
