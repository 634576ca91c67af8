// Package aging buckets the age of pending deliveries into alert colors for
// the dashboards. Two policies coexist: the resident dashboard escalates
// faster than the manager dashboard. They are intentionally kept separate.
package aging

import (
	"time"
)

// Color is an alert tier rendered by the dashboards. The values are the hex
// colors the frontend consumes directly.
type Color string

const (
	Green  Color = "#2abb98"
	Yellow Color = "#f59e0b"
	Red    Color = "#ef4444"
	None   Color = "none"
)

// DeltaDays returns the whole number of days elapsed between createdOn and now.
func DeltaDays(createdOn, now time.Time) int {
	return int(now.Sub(createdOn).Hours() / 24)
}

// ResidentPolicy classifies an age in days for the resident dashboard:
// 2+ days red, 1 day yellow, otherwise green.
func ResidentPolicy(deltaDays int) Color {
	switch {
	case deltaDays >= 2:
		return Red
	case deltaDays >= 1:
		return Yellow
	default:
		return Green
	}
}

// ManagerPolicy classifies an age in days for the manager dashboard:
// more than 3 days red, 2-3 days yellow, otherwise green.
func ManagerPolicy(deltaDays int) Color {
	switch {
	case deltaDays > 3:
		return Red
	case deltaDays >= 2:
		return Yellow
	default:
		return Green
	}
}

// BadgeSummary aggregates pending deliveries into age buckets for the
// pending-deliveries badge.
type BadgeSummary struct {
	Total  int   `json:"total"`
	Green  int   `json:"green"`
	Yellow int   `json:"yellow"`
	Red    int   `json:"red"`
	Color  Color `json:"badge_color"`
}

// Badge classifies each creation timestamp independently (green up to the
// same day, yellow 1-3 days, red older) and picks the overall badge color by
// priority red > yellow > green, or none when there are no items.
func Badge(createdOn []time.Time, now time.Time) BadgeSummary {
	s := BadgeSummary{Total: len(createdOn)}

	for _, c := range createdOn {
		delta := DeltaDays(c, now)
		switch {
		case delta <= 0:
			s.Green++
		case delta <= 3:
			s.Yellow++
		default:
			s.Red++
		}
	}

	switch {
	case s.Total == 0:
		s.Color = None
	case s.Red > 0:
		s.Color = Red
	case s.Yellow > 0:
		s.Color = Yellow
	default:
		s.Color = Green
	}
	return s
}
