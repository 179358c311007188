package market

import (
	"time"
)

// The exchange operates on East Africa Time (UTC+3), which has no
// daylight-saving adjustment.
var EATZone = time.FixedZone("EAT", 3*60*60)

// Clock yields the current instant in exchange-local time. Services hold a
// Clock so tests can pin the time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().In(EATZone)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time.In(EATZone)
}

// FormatTime renders a 24-hour HH:MM:SS clock reading in exchange-local time.
func FormatTime(t time.Time) string {
	return t.In(EATZone).Format("15:04:05")
}

// FormatDate renders a full date with weekday in exchange-local time.
func FormatDate(t time.Time) string {
	return t.In(EATZone).Format("Monday, January 2, 2006")
}
