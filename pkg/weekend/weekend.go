// Package weekend classifies the weekend convention of a locale.
//
// Locales are plain language[-REGION] identifiers such as "ar-EG" or "en-US".
// A small curated list of locales observe a Friday+Saturday weekend, every
// other locale falls back to Saturday+Sunday. All functions are pure and safe
// for concurrent use.
package weekend

import (
	"strings"
	"time"
)

const arabicPrefix = "ar-"

// friSatLocales are matched exactly (ignoring case). Arabic regional
// variants are covered by arabicPrefix instead.
var friSatLocales = [...]string{
	"he-IL", // Israel
	"fa-IR", // Iran
	"ur-PK", // Pakistan
}

// Set is an immutable two-day weekend.
type Set struct {
	first  time.Weekday
	second time.Weekday
}

// The only two Set values. They are built once at package init and handed
// out by pointer, so callers can compare results by identity.
var (
	friSat = &Set{first: time.Friday, second: time.Saturday}
	satSun = &Set{first: time.Saturday, second: time.Sunday}
)

// Contains reports whether day belongs to the weekend.
func (s *Set) Contains(day time.Weekday) bool {
	return day == s.first || day == s.second
}

// Days returns the weekend days in the order they occur in the weekend.
func (s *Set) Days() [2]time.Weekday {
	return [2]time.Weekday{s.first, s.second}
}

// Len is always 2.
func (s *Set) Len() int {
	return 2
}

func (s *Set) String() string {
	return s.first.String() + "+" + s.second.String()
}

// UsesFriSatWeekend reports whether locale observes a Friday+Saturday weekend.
// Comparison ignores case; empty or unknown identifiers return false.
func UsesFriSatWeekend(locale string) bool {
	if len(locale) >= len(arabicPrefix) && strings.EqualFold(locale[:len(arabicPrefix)], arabicPrefix) {
		return true
	}

	for _, l := range friSatLocales {
		if strings.EqualFold(locale, l) {
			return true
		}
	}

	return false
}

// IsWeekendDay reports whether day is a weekend day for locale.
func IsWeekendDay(locale string, day time.Weekday) bool {
	if UsesFriSatWeekend(locale) {
		return day == time.Friday || day == time.Saturday
	}
	return day == time.Saturday || day == time.Sunday
}

// WeekendDays returns the shared weekend set for locale. No allocation
// happens per call; the returned Set must be treated as read-only.
func WeekendDays(locale string) *Set {
	if UsesFriSatWeekend(locale) {
		return friSat
	}
	return satSun
}
