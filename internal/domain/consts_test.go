package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{name: "Should parse full name", input: "friday", want: time.Friday},
		{name: "Should parse capitalised name", input: "Saturday", want: time.Saturday},
		{name: "Should parse abbreviation", input: "SUN", want: time.Sunday},
		{name: "Should parse ISO number for Monday", input: "1", want: time.Monday},
		{name: "Should parse ISO number 7 as Sunday", input: "7", want: time.Sunday},
		{name: "Should trim whitespace", input: "  wed ", want: time.Wednesday},
		{name: "Should parse ISO number with leading zero", input: "05", want: time.Friday},
		{name: "Should reject zero", input: "0", wantErr: true},
		{name: "Should reject ISO number above Sunday", input: "8", wantErr: true},
		{name: "Should reject negative number", input: "-1", wantErr: true},
		{name: "Should reject unknown day", input: "someday", wantErr: true},
		{name: "Should reject empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestISOWeekday(t *testing.T) {
	assert.Equal(t, Sunday, ISOWeekday(time.Sunday))
	assert.Equal(t, Monday, ISOWeekday(time.Monday))
	assert.Equal(t, Saturday, ISOWeekday(time.Saturday))

	for iso, name := range WeekdayNames {
		day, err := ParseWeekday(name)
		require.NoError(t, err)
		assert.Equal(t, iso, ISOWeekday(day))
	}
}

func TestFromISOWeekday(t *testing.T) {
	tests := []struct {
		name   string
		input  int
		want   time.Weekday
		wantOk bool
	}{
		{name: "Should convert Monday", input: Monday, want: time.Monday, wantOk: true},
		{name: "Should convert Friday", input: Friday, want: time.Friday, wantOk: true},
		{name: "Should convert ISO 7 to Go Sunday", input: Sunday, want: time.Sunday, wantOk: true},
		{name: "Should reject zero", input: 0, wantOk: false},
		{name: "Should reject eight", input: 8, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromISOWeekday(tt.input)
			require.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.input, ISOWeekday(got))
			}
		})
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Sunday", WeekdayName(time.Sunday))
	assert.Equal(t, "Friday", WeekdayName(time.Friday))
	assert.Equal(t, "Saturday", WeekdayName(time.Saturday))
}
