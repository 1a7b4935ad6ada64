// Package csvcodec converts between CSV text and the sparse cell grid.
//
// Parsing is best-effort: ragged rows are tolerated and an unterminated
// quote runs to end of input instead of raising. Import accepts comma,
// tab, or semicolon delimiters; export always canonicalizes to comma.
package csvcodec

// delimiter candidates, in tie-break priority order.
var candidates = []byte{',', '\t', ';'}

// DetectDelimiter picks the field delimiter by scanning only the first
// line: each candidate occurrence outside a quoted span is counted, the
// highest count wins, ties break comma > tab > semicolon, and comma is
// the default when nothing scores.
func DetectDelimiter(text string) byte {
	counts := make(map[byte]int, len(candidates))
	inQuotes := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '"' {
			inQuotes = !inQuotes
			continue
		}
		if (ch == '\n' || ch == '\r') && !inQuotes {
			break
		}
		if !inQuotes {
			counts[ch]++
		}
	}

	best := byte(',')
	bestCount := 0
	for _, c := range candidates {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}
