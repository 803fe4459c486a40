package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/shared"
	"innkeep/shared/constant"
	"innkeep/shared/timezone"
)

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 0))
	assert.Equal(t, 3, shared.CalculateTotalPage(25, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 10))
}

func TestParseStayRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{name: "valid range", checkIn: "2026-01-10", checkOut: "2026-01-12", wantErr: false},
		{name: "equal dates rejected", checkIn: "2026-01-10", checkOut: "2026-01-10", wantErr: true},
		{name: "inverted range rejected", checkIn: "2026-01-12", checkOut: "2026-01-10", wantErr: true},
		{name: "malformed check_in", checkIn: "Jan 10", checkOut: "2026-01-12", wantErr: true},
		{name: "malformed check_out", checkIn: "2026-01-10", checkOut: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := shared.ParseStayRange(tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, start.Before(end))
		})
	}
}

func TestParseUpcomingStayRange(t *testing.T) {
	dateFromToday := func(days int) string {
		now := timezone.Now()

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, days).
			Format(constant.StayDateFormat)
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{name: "future range accepted", checkIn: dateFromToday(7), checkOut: dateFromToday(9), wantErr: false},
		{name: "check_in today accepted", checkIn: dateFromToday(0), checkOut: dateFromToday(2), wantErr: false},
		{name: "past check_in rejected", checkIn: dateFromToday(-1), checkOut: dateFromToday(2), wantErr: true},
		{name: "inverted range rejected", checkIn: dateFromToday(9), checkOut: dateFromToday(7), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := shared.ParseUpcomingStayRange(tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, start.Before(end))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "room:get:abc", shared.BuildCacheKey("room:get", "abc"))
}
