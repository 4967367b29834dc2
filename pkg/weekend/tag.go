package weekend

import (
	"time"

	"golang.org/x/text/language"
)

// UsesFriSatWeekendTag is UsesFriSatWeekend for a parsed language tag.
// Canonicalisation done by x/text applies, so the deprecated "iw-IL" is
// treated as "he-IL". language.Und classifies as Saturday+Sunday.
// Tags carrying a script subtag (he-Hebr-IL) no longer equal the listed
// locales and classify as Saturday+Sunday; pass language-region tags.
func UsesFriSatWeekendTag(tag language.Tag) bool {
	return UsesFriSatWeekend(tag.String())
}

// IsWeekendDayTag is IsWeekendDay for a parsed language tag.
func IsWeekendDayTag(tag language.Tag, day time.Weekday) bool {
	return IsWeekendDay(tag.String(), day)
}

// WeekendDaysTag is WeekendDays for a parsed language tag.
func WeekendDaysTag(tag language.Tag) *Set {
	return WeekendDays(tag.String())
}
