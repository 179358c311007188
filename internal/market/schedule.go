package market

import (
	"time"

	"github.com/wcib/ipoportal/internal/models"
)

// Trading hours: weekdays 09:00-15:00 exchange time. The open boundary is
// inclusive, the close boundary exclusive, so the open interval is [9,15).
const (
	OpenHour  = 9
	CloseHour = 15
)

// IsOpen reports whether the market is trading at t.
func IsOpen(t time.Time) bool {
	t = t.In(EATZone)
	day := t.Weekday()
	if day == time.Saturday || day == time.Sunday {
		return false
	}
	hour := t.Hour()
	return hour >= OpenHour && hour < CloseHour
}

// Evaluate computes the open/closed state at t, the next transition and the
// minutes until it, plus a display message.
//
// Weekend remaining time is a coarse whole-day figure (multiples of 1440
// minutes), not an exact countdown to Monday 9:00. Downstream display logic
// expects round day multiples, so keep it that way.
func Evaluate(t time.Time) models.MarketStatus {
	t = t.In(EATZone)
	hour := t.Hour()
	minute := t.Minute()
	day := t.Weekday()

	if day == time.Saturday || day == time.Sunday {
		daysUntilMonday := 2
		if day == time.Sunday {
			daysUntilMonday = 1
		}
		return models.MarketStatus{
			IsOpen:        false,
			NextEvent:     models.MarketEventOpen,
			TimeRemaining: daysUntilMonday * 24 * 60,
			Message:       "Market closed for weekend. Opens Monday at 9:00 AM",
		}
	}

	if hour < OpenHour {
		return models.MarketStatus{
			IsOpen:        false,
			NextEvent:     models.MarketEventOpen,
			TimeRemaining: (OpenHour-1-hour)*60 + (60 - minute),
			Message:       "Market opens at 9:00 AM",
		}
	}

	if hour < CloseHour {
		return models.MarketStatus{
			IsOpen:        true,
			NextEvent:     models.MarketEventClose,
			TimeRemaining: (CloseHour-1-hour)*60 + (60 - minute),
			Message:       "Market closes at 3:00 PM",
		}
	}

	return models.MarketStatus{
		IsOpen:        false,
		NextEvent:     models.MarketEventOpen,
		TimeRemaining: (24-hour+OpenHour)*60 - minute,
		Message:       "Market opens tomorrow at 9:00 AM",
	}
}

// NextOpen returns the next instant the market opens after t.
func NextOpen(t time.Time) time.Time {
	t = t.In(EATZone)
	next := t
	if t.Weekday() != time.Saturday && t.Weekday() != time.Sunday && t.Hour() >= CloseHour {
		next = next.AddDate(0, 0, 1)
	}
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return time.Date(next.Year(), next.Month(), next.Day(), OpenHour, 0, 0, 0, EATZone)
}
