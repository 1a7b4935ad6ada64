// Package sheet ties the spreadsheet codecs together: it moves the
// sparse cell grid between CSV text, xlsx workbooks, and files, picking
// the codec from the file extension.
package sheet

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/1dking/Accountant-sub002/pkg/sheet/csvcodec"
	"github.com/1dking/Accountant-sub002/pkg/sheet/format"
	"github.com/1dking/Accountant-sub002/pkg/sheet/models"
	"github.com/1dking/Accountant-sub002/pkg/sheet/xlsx"
)

// ImportCSV decodes CSV text into a sparse grid. It never fails:
// malformed input degrades to a best-effort parse.
func ImportCSV(text string) *models.Sheet {
	return csvcodec.Parse(text)
}

// ExportCSV encodes a grid as canonical comma-delimited CSV.
func ExportCSV(s *models.Sheet) string {
	return csvcodec.Serialize(s)
}

// ImportFile loads a grid from a .csv or .xlsx file.
func ImportFile(path string) (*models.Sheet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewCodecError(path, "import", ErrFileNotFound)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewCodecError(path, "import", err)
		}
		return ImportCSV(string(data)), nil
	case ".xlsx":
		s, err := xlsx.Import(path)
		if err != nil {
			return nil, NewCodecError(path, "import", err)
		}
		return s, nil
	default:
		return nil, NewCodecError(path, "import", ErrUnsupportedFormat)
	}
}

// ExportFile writes a grid to a .csv or .xlsx file.
func ExportFile(s *models.Sheet, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		if err := os.WriteFile(path, []byte(ExportCSV(s)), 0644); err != nil {
			return NewCodecError(path, "export", err)
		}
		return nil
	case ".xlsx":
		if err := xlsx.Export(s, path); err != nil {
			return NewCodecError(path, "export", err)
		}
		return nil
	default:
		return NewCodecError(path, "export", ErrUnsupportedFormat)
	}
}

// Rendered returns a copy of the grid with every cell value replaced by
// its display string, for presentation-layer export. Formats and
// presentation attributes are cleared since the values are already
// rendered.
func Rendered(s *models.Sheet) *models.Sheet {
	out := models.NewSheet()
	out.NumRows = s.NumRows
	out.NumCols = s.NumCols
	for key, cell := range s.Cells {
		out.Cells[key] = models.Cell{Value: format.Display(cell.Value, cell.Format)}
	}
	return out
}
