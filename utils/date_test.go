package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"unpadded month and day", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "3/5/2024"},
		{"double digits", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), "12/25/2024"},
		{"zero time", time.Time{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DisplayDate(tc.in))
		})
	}
}

func TestDisplayDateRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1/1/2024 - 1/2/2024", DisplayDateRange(start, end))
}

func TestParseInputDate(t *testing.T) {
	parsed, err := ParseInputDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseInputDate("03/05/2024")
	assert.Error(t, err)
}

func TestParseInputDateTime(t *testing.T) {
	parsed, err := ParseInputDateTime("2024-03-05T14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), parsed)
}

func TestValidClockTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"24:00", false},
		{"09:60", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidClockTime(tc.in))
		})
	}
}

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"rfc3339", "2024-03-05T14:30:00Z", true},
		{"no zone", "2024-03-05T14:30:00", true},
		{"space separator", "2024-03-05 14:30:00", true},
		{"date only", "2024-03-05", true},
		{"empty", "", false},
		{"garbage", "yesterday", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseISOTime(tc.in)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2024, got.Year())
		})
	}
}
