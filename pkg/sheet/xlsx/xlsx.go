// Package xlsx reads and writes the sparse cell grid as .xlsx workbooks.
package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/1dking/Accountant-sub002/pkg/sheet/models"
	"github.com/1dking/Accountant-sub002/pkg/sheet/ref"
)

const defaultSheetName = "Sheet1"

// Import reads the first worksheet of an xlsx file into a sparse grid.
// Empty cells are not stored; NumRows/NumCols reflect the worksheet's
// used rectangle.
func Import(path string) (*models.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	sheet := models.NewSheet()
	sheet.NumRows = len(rows)
	for rowIdx, row := range rows {
		if len(row) > sheet.NumCols {
			sheet.NumCols = len(row)
		}
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			sheet.Cells[ref.Encode(rowIdx, colIdx)] = models.Cell{Value: value}
		}
	}
	return sheet, nil
}

// Export writes the grid's raw values to a single-sheet xlsx workbook.
// Presentation attributes are opaque to this subsystem and are not
// persisted.
func Export(sheet *models.Sheet, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for key, cell := range sheet.Cells {
		if _, ok := ref.Parse(key); !ok {
			continue
		}
		if err := f.SetCellStr(defaultSheetName, key, cell.Value); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
