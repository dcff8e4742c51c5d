package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 545, false},
		{"23:59", 1439, false},
		{"12:30", 750, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:05", 0, true},  // not zero padded
		{"09:5", 0, true},  // not zero padded
		{"0905", 0, true},  // missing colon
		{"09:05 ", 0, true},
		{"-1:05", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrMalformedTime, "input %q", tt.in)
		} else {
			assert.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestElapsedMinutes(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"same day", "07:00", "07:40", 40},
		{"zero", "12:00", "12:00", 0},
		{"wraps past midnight", "23:50", "00:20", 30},
		{"long overnight", "22:00", "06:00", 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseTimeOfDay(tt.start)
			assert.NoError(t, err)
			end, err := ParseTimeOfDay(tt.end)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ElapsedMinutes(start, end))
		})
	}
}

func TestFormatTimeOfDayRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "23:59", "13:07"} {
		m, err := ParseTimeOfDay(s)
		assert.NoError(t, err)
		assert.Equal(t, s, FormatTimeOfDay(m))
	}
}
