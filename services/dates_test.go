package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayStartEnd(t *testing.T) {
	ts := time.Date(2025, time.March, 14, 15, 9, 26, 535897932, time.Local)

	start := dayStart(ts)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local), start)

	end := dayEnd(ts)
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.After(ts))
	assert.Equal(t, start.Day(), end.Day())
}

func TestDaysBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 12, 0, 0, 0, time.Local)
	}

	assert.Equal(t, 0, daysBetween(day(10), day(10)))
	assert.Equal(t, 1, daysBetween(day(10), day(11)))
	assert.Equal(t, 5, daysBetween(day(10), day(15)))
	assert.Equal(t, -1, daysBetween(day(11), day(10)))

	// near-midnight pairing still counts whole calendar days
	a := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.Local)
	b := time.Date(2025, time.March, 11, 0, 1, 0, 0, time.Local)
	assert.Equal(t, 1, daysBetween(a, b))
}
