package timerange

import (
	"testing"
	"time"

	"kucukaslan/interactions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	endOfToday := time.Date(2026, 3, 1, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	tests := []struct {
		name      string
		token     string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"absent token is today", "", day(2026, 3, 1), endOfToday},
		{"today alias", "today", day(2026, 3, 1), endOfToday},
		{"weekly crosses month boundary", "weekly", day(2026, 2, 22), endOfToday},
		{"monthly", "monthly", day(2026, 1, 30), endOfToday},
		{"yearly", "yearly", day(2025, 3, 1), endOfToday},
		{"case and spaces are ignored", "  Weekly ", day(2026, 2, 22), endOfToday},
		{"explicit date", "2024-02-29", day(2024, 2, 29), time.Date(2024, 2, 29, 23, 59, 59, int(999*time.Millisecond), time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Resolve(tt.token, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestResolve_InvalidTokenIsValidationError(t *testing.T) {
	for _, token := range []string{"fortnightly", "2026-13-01", "2026-02-30", "01/03/2026"} {
		_, err := Resolve(token, now)
		require.Error(t, err, token)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "range", vErr.Fields[0].Field)
	}
}

func TestResolve_UsesUTCCalendarDay(t *testing.T) {
	// 23:30 in UTC-5 is already the next UTC day.
	loc := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2026, 12, 31, 23, 30, 0, 0, loc)

	w, err := Resolve("", local)
	require.NoError(t, err)
	assert.Equal(t, day(2027, 1, 1), w.Start)
}

func TestDayBounds_MidnightRollover(t *testing.T) {
	start, end := DayBounds(time.Date(2026, 3, 1, 23, 59, 59, 999_999_999, time.UTC))
	assert.Equal(t, day(2026, 3, 1), start)
	assert.Equal(t, day(2026, 3, 2), end)

	start, _ = DayBounds(day(2026, 3, 2))
	assert.Equal(t, day(2026, 3, 2), start)
}

func TestRolling(t *testing.T) {
	w := Rolling(now, 30)
	assert.Equal(t, now.Add(-30*time.Minute), w.Start)
	assert.Equal(t, now, w.End)
	assert.True(t, w.Contains(now.Add(-time.Minute)))
	assert.False(t, w.Contains(now.Add(-31*time.Minute)))
}
