package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trackspend/expense_tracker_app/internal/core/domain"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Jan", domain.MonthName(1))
	assert.Equal(t, "Jun", domain.MonthName(6))
	assert.Equal(t, "Dec", domain.MonthName(12))
}

func TestYearRange(t *testing.T) {
	start, end := domain.YearRange(2025)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		wantEnd time.Time
	}{
		{
			name:    "thirty-one day month",
			year:    2025,
			month:   3,
			wantEnd: time.Date(2025, time.March, 31, 23, 59, 59, 999_000_000, time.UTC),
		},
		{
			name:    "february in a non-leap year",
			year:    2025,
			month:   2,
			wantEnd: time.Date(2025, time.February, 28, 23, 59, 59, 999_000_000, time.UTC),
		},
		{
			name:    "february in a leap year",
			year:    2024,
			month:   2,
			wantEnd: time.Date(2024, time.February, 29, 23, 59, 59, 999_000_000, time.UTC),
		},
		{
			name:    "december rolls into the next year correctly",
			year:    2025,
			month:   12,
			wantEnd: time.Date(2025, time.December, 31, 23, 59, 59, 999_000_000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := domain.MonthRange(tt.year, tt.month)
			assert.Equal(t, time.Date(tt.year, time.Month(tt.month), 1, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2025, time.July, 4, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.July, 4, 23, 59, 59, 999_000_000, time.UTC), domain.EndOfDay(in))

	// Non-UTC inputs are normalized to the UTC calendar day.
	loc := time.FixedZone("UTC+5", 5*3600)
	in = time.Date(2025, time.July, 5, 2, 0, 0, 0, loc) // 2025-07-04 21:00 UTC
	assert.Equal(t, time.Date(2025, time.July, 4, 23, 59, 59, 999_000_000, time.UTC), domain.EndOfDay(in))
}
