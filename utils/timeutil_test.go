package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinDatesInclusiveBounds(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local)

	// 边界当天算在区间内，不看时分秒
	assert.True(t, WithinDates(time.Date(2025, 6, 1, 23, 59, 59, 0, time.Local), start, end))
	assert.True(t, WithinDates(time.Date(2025, 6, 30, 0, 0, 1, 0, time.Local), start, end))
	assert.True(t, WithinDates(time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local), start, end))

	assert.False(t, WithinDates(time.Date(2025, 5, 31, 23, 59, 59, 0, time.Local), start, end))
	assert.False(t, WithinDates(time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local), start, end))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 6, 15, 18, 30, 45, 123, time.Local)
	d := DateOnly(ts)

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 1, 5, 9, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-01-05", FormatDate(ts))
	assert.Equal(t, "2025-01-05 09:00:00", FormatDateTime(ts))
}
