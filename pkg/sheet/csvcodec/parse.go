package csvcodec

import (
	"strings"

	"github.com/1dking/Accountant-sub002/pkg/sheet/models"
	"github.com/1dking/Accountant-sub002/pkg/sheet/ref"
)

// Parse decodes CSV text (auto-detected delimiter) into a sparse grid.
// Only fields whose trimmed text is non-empty are stored. NumRows is the
// physical line count after dropping one trailing fully blank line;
// NumCols is the widest field count seen.
func Parse(text string) *models.Sheet {
	delim := DetectDelimiter(text)
	lines := splitLines(text)

	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	sheet := models.NewSheet()
	sheet.NumRows = len(lines)

	for row, line := range lines {
		fields := splitFields(line, delim)
		if len(fields) > sheet.NumCols {
			sheet.NumCols = len(fields)
		}
		for col, field := range fields {
			value := strings.TrimSpace(field)
			if value == "" {
				continue
			}
			sheet.Cells[ref.Encode(row, col)] = models.Cell{Value: value}
		}
	}

	return sheet
}

// splitLines cuts text into physical lines. A quote toggles the in-quote
// state; \n or \r outside quotes terminates a line (\r\n counts as one
// terminator), while newlines inside quotes stay literal line content,
// so quoted fields may span lines.
func splitLines(text string) []string {
	var lines []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			cur.WriteByte(ch)
		case (ch == '\n' || ch == '\r') && !inQuotes:
			lines = append(lines, cur.String())
			cur.Reset()
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		default:
			cur.WriteByte(ch)
		}
	}
	return append(lines, cur.String())
}

// splitFields cuts one line into fields. Inside quotes a doubled ""
// is an escaped literal quote; a lone " toggles out. Outside quotes a
// " toggles in and an unquoted delimiter ends the field. A quote left
// open at end of line simply runs to the end.
func splitFields(line string, delim byte) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inQuotes && ch == '"':
			if i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
		case ch == '"':
			inQuotes = true
		case ch == delim && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	return append(fields, cur.String())
}
