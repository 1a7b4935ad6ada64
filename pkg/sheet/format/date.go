package format

import (
	"regexp"
	"strings"
	"time"
)

// Serial day-counts landing outside this calendar-year window are
// treated as ordinary numbers, not dates. The window is what decides
// whether an all-digit cell is a date or a number.
const (
	minSerialYear = 1900
	maxSerialYear = 2200
)

const secondsPerDay = 86400

var (
	isoPrefixPattern = regexp.MustCompile(`^([0-9]{4})-([0-9]{1,2})-([0-9]{1,2})`)
	usDatePattern    = regexp.MustCompile(`^([0-9]{1,2})/([0-9]{1,2})/([0-9]{4})$`)
)

// freeFormLayouts are tried in order for step 4 of the heuristic. All
// are zone-less, so time.Parse yields UTC calendar fields directly.
var freeFormLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/1/2",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// parseDate applies the date heuristic, first success wins:
//
//  1. numeric day-count since the Unix epoch, accepted only when the
//     resulting year falls in [1900, 2200]
//  2. ISO-like prefix YYYY-M-D anchored at the start
//  3. US-style M/D/YYYY as a full match
//  4. free-form layouts
//
// All candidates are built from UTC calendar fields so reformatting
// cannot drift across timezones.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if days, ok := parseNumber(s); ok {
		t := time.Unix(int64(days*secondsPerDay), 0).UTC()
		if y := t.Year(); y >= minSerialYear && y <= maxSerialYear {
			return t, true
		}
		// Out-of-window day-counts fall through; the remaining rules
		// cannot match a purely numeric string, so the value stays raw.
		return time.Time{}, false
	}

	if m := isoPrefixPattern.FindStringSubmatch(s); m != nil {
		if t, ok := utcDate(atoi(m[1]), atoi(m[2]), atoi(m[3])); ok {
			return t, true
		}
	}

	if m := usDatePattern.FindStringSubmatch(s); m != nil {
		if t, ok := utcDate(atoi(m[3]), atoi(m[1]), atoi(m[2])); ok {
			return t, true
		}
	}

	for _, layout := range freeFormLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// utcDate builds a UTC date and rejects field combinations that
// time.Date would silently normalize (month 13, day 40).
func utcDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
