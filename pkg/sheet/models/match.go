package models

// Match locates a single search hit. Matches are transient: they are
// recomputed whenever the search term, flags, or grid content change.
type Match struct {
	// Ref is the canonical reference of the matching cell.
	Ref string `json:"ref"`
	// Row is the zero-based row index.
	Row int `json:"row"`
	// Col is the zero-based column index.
	Col int `json:"col"`
}
