package format

import (
	"testing"

	"github.com/1dking/Accountant-sub002/pkg/sheet/models"
)

func TestDisplayNumber(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1234.5", "1,234.50"},
		{"-1234.56", "-1,234.56"},
		{"0", "0.00"},
		{"1000000", "1,000,000.00"},
		{"1e3", "1,000.00"},
		{".5", "0.50"},
		{" 42 ", "42.00"},
		{"abc", "abc"},
		{"12abc", "12abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Display(tt.value, models.FormatNumber); got != tt.want {
			t.Errorf("Display(%q, number) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDisplayCurrency(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1234.5", "$1,234.50"},
		{"-1234.56", "-$1,234.56"},
		{"0.005", "$0.01"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Display(tt.value, models.FormatCurrency); got != tt.want {
			t.Errorf("Display(%q, currency) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDisplayPercent(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"0.5", "50.00%"},
		{"-0.5", "-50.00%"},
		{"12.5", "1,250.00%"},
		{"half", "half"},
	}

	for _, tt := range tests {
		if got := Display(tt.value, models.FormatPercent); got != tt.want {
			t.Errorf("Display(%q, percent) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDisplayPlain(t *testing.T) {
	if got := Display("  raw text ", models.FormatPlain); got != "  raw text " {
		t.Errorf("plain display changed value: %q", got)
	}
	if got := Display("1234.5", ""); got != "1234.5" {
		t.Errorf("untagged display changed value: %q", got)
	}
	if got := Display("", models.FormatDate); got != "" {
		t.Errorf("empty value should stay empty, got %q", got)
	}
}

func TestDisplayDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2024-03-05", "03/05/2024"},
		{"2024-3-5", "03/05/2024"},
		{"3/5/2024", "03/05/2024"},
		{"12/31/1999", "12/31/1999"},
		{"2024-03-05T10:30:00", "03/05/2024"},
		{"March 5, 2024", "03/05/2024"},
		// Serial day-counts since the epoch.
		{"19723", "01/01/2024"},
		{"0", "01/01/1970"},
		{"123", "05/04/1970"},
		{"-365", "01/01/1969"},
		// Outside the 1900-2200 window the number is not a date.
		{"99999999", "99999999"},
		// Calendar fields that do not exist stay raw.
		{"13/45/2024", "13/45/2024"},
		{"2024-13-01", "2024-13-01"},
		{"not a date", "not a date"},
	}

	for _, tt := range tests {
		if got := Display(tt.value, models.FormatDate); got != tt.want {
			t.Errorf("Display(%q, date) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"42", true},
		{"-0.5", true},
		{"+1.5e-3", true},
		{".5", true},
		{" 42 ", true},
		{"", false},
		{"  ", false},
		{"abc", false},
		{"NaN", false},
		{"Inf", false},
		{"0x10", false},
		{"1_000", false},
		{"1.2.3", false},
	}

	for _, tt := range tests {
		if got := IsNumeric(tt.value); got != tt.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
