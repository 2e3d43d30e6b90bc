package event

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// startTextPattern matches the start snippet of a CTFTime listing, e.g.
// "20 Aug., 10:00 UTC" or "20 Aug. 2025, 10:00 UTC". Captures: day, month
// token, optional 4-digit year, and the clock time (required by the
// pattern but not used for filtering).
var startTextPattern = regexp.MustCompile(`(\d{1,2})\s+([A-Za-z]+)\.?,?\s*(?:(\d{4}),?)?\s*(\d{1,2}:\d{2})`)

// monthAbbrevs maps English three-letter month abbreviations to month
// numbers. Lookup is case-sensitive on the first three letters of the
// scraped token. Known quirk: an unrecognized abbreviation falls back to
// January, so a misspelled month can misclassify an event.
var monthAbbrevs = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// MonthFromToken converts a scraped month token to a time.Month using the
// first three letters. Unrecognized tokens resolve to January (see the
// note on monthAbbrevs).
func MonthFromToken(token string) time.Month {
	if len(token) > 3 {
		token = token[:3]
	}
	if m, ok := monthAbbrevs[token]; ok {
		return m
	}
	return time.January
}

// ResolveYear infers the year for a yearless listing. Recurring listings
// print "5 Jan." in December meaning next January, so a month/day that has
// already passed this year rolls forward to next year.
func ResolveYear(today time.Time, month time.Month, day int) int {
	candidate := time.Date(today.Year(), month, day, 0, 0, 0, 0, time.UTC)
	if candidate.Before(midnight(today)) {
		return today.Year() + 1
	}
	return today.Year()
}

// ResolveStartDate parses an event's raw start text into an absolute UTC
// calendar date, using today to disambiguate listings that omit the year.
func ResolveStartDate(startText string, today time.Time) (time.Time, error) {
	matches := startTextPattern.FindStringSubmatch(startText)
	if matches == nil {
		return time.Time{}, fmt.Errorf("no date found in %q", startText)
	}

	day, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q: %w", startText, err)
	}

	month := MonthFromToken(matches[2])

	var year int
	if matches[3] != "" {
		year, err = strconv.Atoi(matches[3])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid year in %q: %w", startText, err)
		}
	} else {
		year = ResolveYear(today, month, day)
	}

	resolved := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range values (Feb 30 becomes Mar 2);
	// treat that as a parse failure rather than a shifted date.
	if resolved.Day() != day || resolved.Month() != month {
		return time.Time{}, fmt.Errorf("invalid calendar date in %q", startText)
	}

	return resolved, nil
}

// Window returns the closed calendar interval [today, today+days] in UTC.
func Window(today time.Time, days int) (time.Time, time.Time) {
	from := midnight(today)
	return from, from.AddDate(0, 0, days)
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
