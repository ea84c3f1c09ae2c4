package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSelectableDays(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", date(2025, 2, 5), date(2025, 2, 5), 1},
		{"two days", date(2025, 2, 5), date(2025, 2, 6), 2},
		{"across month boundary", date(2025, 1, 30), date(2025, 2, 2), 4},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"full month", date(2025, 3, 1), date(2025, 3, 31), 31},
		{"reversed range", date(2025, 2, 6), date(2025, 2, 5), 0},
		{"far reversed range", date(2025, 2, 10), date(2025, 2, 5), -4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SelectableDays(c.from, c.to))
		})
	}
}

func TestSelectableDays_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	from := time.Date(2025, 2, 5, 23, 30, 0, 0, loc)
	to := time.Date(2025, 2, 6, 0, 15, 0, 0, loc)

	assert.Equal(t, 2, SelectableDays(from, to))
}

func TestSelectableDays_InclusiveCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := date(2020, 1, 1).AddDate(0, 0, rapid.IntRange(0, 4000).Draw(t, "offset"))
		span := rapid.IntRange(0, 400).Draw(t, "span")
		end := start.AddDate(0, 0, span)

		if got := SelectableDays(start, end); got != span+1 {
			t.Fatalf("SelectableDays(%v, %v) = %d, want %d", start, end, got, span+1)
		}
	})
}

func TestAttendanceRate(t *testing.T) {
	cases := []struct {
		present int
		want    int
	}{
		{26, 100},
		{20, 77}, // round(20/26*100) = 76.92 -> 77
		{13, 50},
		{0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AttendanceRate(c.present), "present=%d", c.present)
	}
}

func TestMonthBounds(t *testing.T) {
	first, last := monthBounds(2025, time.February)
	assert.Equal(t, date(2025, 2, 1), first)
	assert.Equal(t, date(2025, 2, 28), last)

	first, last = monthBounds(2024, time.February)
	assert.Equal(t, date(2024, 2, 1), first)
	assert.Equal(t, date(2024, 2, 29), last)
}
