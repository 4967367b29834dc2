package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// weekdayLookup accepts lowercase names and abbreviations
var weekdayLookup = map[string]time.Weekday{
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
}

// DefaultLocale is used when a caller's locale can't be determined
const DefaultLocale = "en-US"

// ParseWeekday parses an English day name, its three-letter abbreviation or
// its ISO number (1=Mon .. 7=Sun).
func ParseWeekday(s string) (time.Weekday, error) {
	input := strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(input); err == nil {
		if day, ok := FromISOWeekday(n); ok {
			return day, nil
		}
	} else if day, ok := weekdayLookup[input]; ok {
		return day, nil
	}

	return time.Sunday, fmt.Errorf("invalid day %q. Use a name (friday), an abbreviation (fri) or a number 1-7 (1=Mon, 7=Sun)", s)
}

// ISOWeekday converts a time.Weekday to its ISO 8601 number
func ISOWeekday(day time.Weekday) int {
	if day == time.Sunday { // Sunday = 0 in Go, but we want 7 for ISO 8601
		return Sunday
	}
	return int(day)
}

// FromISOWeekday converts an ISO 8601 weekday number back to a time.Weekday
func FromISOWeekday(n int) (time.Weekday, bool) {
	if n < Monday || n > Sunday {
		return time.Sunday, false
	}
	if n == Sunday {
		return time.Sunday, true
	}
	return time.Weekday(n), true
}

// WeekdayName returns the English name of day
func WeekdayName(day time.Weekday) string {
	return WeekdayNames[ISOWeekday(day)]
}
