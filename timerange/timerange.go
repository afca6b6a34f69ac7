// Package timerange maps symbolic range tokens to concrete UTC reporting windows.
// Every function takes "now" explicitly so boundary dates are deterministic.
package timerange

import (
	"strings"
	"time"

	"kucukaslan/interactions/domain"
)

const (
	Weekly  = "weekly"
	Monthly = "monthly"
	Yearly  = "yearly"
	Today   = "today"
)

const lastMillisecond = 24*time.Hour - time.Millisecond

var lookback = map[string]int{
	Weekly:  7,
	Monthly: 30,
	Yearly:  365,
}

// StartOfDay truncates t to 00:00:00.000 UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999 UTC of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(lastMillisecond)
}

// DayBounds returns the half-open [00:00, next 00:00) interval of t's UTC day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// Resolve maps a range token to a window. An empty token (or "today") is the
// current UTC day; weekly/monthly/yearly reach back 7/30/365 days; anything else
// must be a YYYY-MM-DD date and selects that single day.
func Resolve(token string, now time.Time) (domain.Window, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	end := EndOfDay(now)

	if token == "" || token == Today {
		return domain.Window{Start: StartOfDay(now), End: end}, nil
	}
	if days, ok := lookback[token]; ok {
		return domain.Window{Start: StartOfDay(now).AddDate(0, 0, -days), End: end}, nil
	}

	day, err := time.ParseInLocation(time.DateOnly, token, time.UTC)
	if err != nil {
		return domain.Window{}, domain.NewValidationError("range", "must be weekly, monthly, yearly or a YYYY-MM-DD date")
	}
	return domain.Window{Start: day, End: EndOfDay(day)}, nil
}

// Rolling returns the real-time window covering the last minutes up to now.
func Rolling(now time.Time, minutes int) domain.Window {
	now = now.UTC()
	return domain.Window{Start: now.Add(-time.Duration(minutes) * time.Minute), End: now}
}
