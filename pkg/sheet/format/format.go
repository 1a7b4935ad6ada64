// Package format renders raw cell text into display strings.
//
// Rendering never fails: a value that does not fit its format tag is
// returned unchanged, so malformed content degrades to showing the raw
// text instead of crashing the presentation layer.
package format

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/1dking/Accountant-sub002/pkg/sheet/models"
)

// printer applies en-US digit grouping (1,234.50) regardless of the
// process locale.
var printer = message.NewPrinter(language.English)

// numberPattern is the accepted decimal grammar: optional sign, digits,
// optional fraction, optional exponent. Deliberately narrower than
// strconv.ParseFloat, which also admits Inf, NaN, and hex floats.
var numberPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// Display renders value according to tag. Empty values render as ""
// regardless of tag; an unconvertible value is returned unchanged.
func Display(value string, tag models.Format) string {
	if value == "" {
		return ""
	}
	switch tag {
	case models.FormatNumber:
		f, ok := parseNumber(value)
		if !ok {
			return value
		}
		return groupedDecimal(f)
	case models.FormatCurrency:
		f, ok := parseNumber(value)
		if !ok {
			return value
		}
		if f < 0 {
			return "-$" + groupedDecimal(-f)
		}
		return "$" + groupedDecimal(f)
	case models.FormatPercent:
		f, ok := parseNumber(value)
		if !ok {
			return value
		}
		return groupedDecimal(f*100) + "%"
	case models.FormatDate:
		t, ok := parseDate(value)
		if !ok {
			return value
		}
		return t.Format("01/02/2006")
	default:
		return value
	}
}

// IsNumeric reports whether s is non-empty after trimming and matches
// the decimal grammar above.
func IsNumeric(s string) bool {
	_, ok := parseNumber(s)
	return ok
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !numberPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// groupedDecimal formats with exactly two decimals and thousands
// grouping every three digits of the integer part. The sign, when
// present, precedes the whole formatted string.
func groupedDecimal(f float64) string {
	return printer.Sprintf("%.2f", f)
}
