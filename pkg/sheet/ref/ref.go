// Package ref converts between zero-based (row, col) coordinates and
// "A1"-style cell references.
//
// Column labels use bijective base-26: there is no zero letter, so "Z"
// (index 25) is followed by "AA" (index 26), not a rollover with a
// leading zero digit.
package ref

import (
	"regexp"
	"strconv"
	"strings"
)

// Address is a zero-based cell coordinate. Column 0 is "A".
type Address struct {
	Row int
	Col int
}

var refPattern = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// EncodeColumn returns the bijective base-26 label for a zero-based
// column index: 0 -> "A", 25 -> "Z", 26 -> "AA".
func EncodeColumn(index int) string {
	var b []byte
	for index >= 0 {
		b = append([]byte{byte('A' + index%26)}, b...)
		index = index/26 - 1
	}
	return string(b)
}

// DecodeColumn is the inverse of EncodeColumn. The label must be
// non-empty upper-case A-Z; anything else is the caller's bug.
func DecodeColumn(label string) int {
	col := 0
	for i := 0; i < len(label); i++ {
		col = col*26 + int(label[i]-'A'+1)
	}
	return col - 1
}

// Encode returns the canonical reference for a zero-based (row, col),
// e.g. Encode(11, 1) == "B12".
func Encode(row, col int) string {
	return EncodeColumn(col) + strconv.Itoa(row+1)
}

// Parse decodes a canonical reference back into a zero-based Address.
// It reports no-match for anything that is not upper-case letters
// followed by a positive row ordinal; it never fails harder than that.
func Parse(s string) (Address, bool) {
	m := refPattern.FindStringSubmatch(s)
	if m == nil {
		return Address{}, false
	}
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 {
		// Row ordinals are 1-based; "A0" has no coordinate.
		return Address{}, false
	}
	return Address{Row: row - 1, Col: DecodeColumn(m[1])}, true
}

// ExpandRange expands "REF1:REF2" (or a bare "REF") into the ordered
// list of references covering the rectangle, enumerated row-major. If
// either endpoint fails to parse, the original string is returned as a
// single-element list rather than an error.
func ExpandRange(s string) []string {
	parts := strings.SplitN(s, ":", 2)

	start, ok := Parse(parts[0])
	if !ok {
		return []string{s}
	}
	end := start
	if len(parts) == 2 {
		if end, ok = Parse(parts[1]); !ok {
			return []string{s}
		}
	}

	r1, r2 := minMax(start.Row, end.Row)
	c1, c2 := minMax(start.Col, end.Col)

	refs := make([]string, 0, (r2-r1+1)*(c2-c1+1))
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			refs = append(refs, Encode(r, c))
		}
	}
	return refs
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
