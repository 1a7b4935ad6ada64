package csvcodec

import (
	"strings"

	"github.com/1dking/Accountant-sub002/pkg/sheet/models"
	"github.com/1dking/Accountant-sub002/pkg/sheet/ref"
)

// Serialize encodes a sparse grid as canonical comma-delimited CSV with
// \n line separators. The emitted rectangle spans the populated cells,
// extended by any larger declared NumRows/NumCols. Trailing empty fields
// are stripped per row (keeping at least one) and trailing fully empty
// lines are dropped.
func Serialize(sheet *models.Sheet) string {
	maxRow, maxCol := populatedBounds(sheet)
	if sheet.NumRows-1 > maxRow {
		maxRow = sheet.NumRows - 1
	}
	if sheet.NumCols-1 > maxCol {
		maxCol = sheet.NumCols - 1
	}
	if maxRow < 0 || maxCol < 0 {
		return ""
	}

	lines := make([]string, 0, maxRow+1)
	for r := 0; r <= maxRow; r++ {
		fields := make([]string, 0, maxCol+1)
		for c := 0; c <= maxCol; c++ {
			fields = append(fields, escapeField(sheet.Value(ref.Encode(r, c))))
		}
		for len(fields) > 1 && fields[len(fields)-1] == "" {
			fields = fields[:len(fields)-1]
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// populatedBounds finds the bounding box of stored cells. Keys that do
// not parse as references are skipped. Returns (-1, -1) for an empty
// grid.
func populatedBounds(sheet *models.Sheet) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for key := range sheet.Cells {
		addr, ok := ref.Parse(key)
		if !ok {
			continue
		}
		if addr.Row > maxRow {
			maxRow = addr.Row
		}
		if addr.Col > maxCol {
			maxCol = addr.Col
		}
	}
	return maxRow, maxCol
}

// escapeField wraps a field in quotes, doubling internal quotes, iff it
// contains a comma, quote, or line break.
func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
