package models

// Sheet is a sparse grid: only non-empty cells are stored, keyed by their
// canonical reference ("A1", "AZ14"). NumRows/NumCols may declare a
// bounding box larger than the populated cells; they never shrink it.
//
// The surrounding application owns the Sheet. This subsystem only reads
// it and, for replace operations, returns mutation instructions for the
// owner to apply.
type Sheet struct {
	// Cells maps canonical cell references to their data.
	Cells map[string]Cell `json:"cells"`
	// NumRows is the declared row count (0 if only populated cells count).
	NumRows int `json:"numRows,omitempty"`
	// NumCols is the declared column count.
	NumCols int `json:"numCols,omitempty"`
}

// NewSheet returns an empty sheet with an initialized cell map.
func NewSheet() *Sheet {
	return &Sheet{Cells: make(map[string]Cell)}
}

// Value returns the raw text of the cell at ref, or "" when absent.
func (s *Sheet) Value(ref string) string {
	return s.Cells[ref].Value
}
