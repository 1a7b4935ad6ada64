// Package models defines data structures for the spreadsheet core.
package models

// Format is the display format tag of a cell. An empty tag means plain.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatNumber   Format = "number"
	FormatCurrency Format = "currency"
	FormatPercent  Format = "percent"
	FormatDate     Format = "date"
)

// Cell holds the raw text of a single cell plus its display format and
// presentation attributes. The presentation fields are a closed set that
// the codecs pass through untouched; only Value and Format carry meaning
// inside this subsystem.
type Cell struct {
	// Value is the raw cell text as entered.
	Value string `json:"value"`
	// Format selects how Value is rendered for display.
	Format Format `json:"format,omitempty"`

	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	FontColor string `json:"fontColor,omitempty"`
	FillColor string `json:"fillColor,omitempty"`
}
