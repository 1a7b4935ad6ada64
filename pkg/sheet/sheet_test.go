package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/1dking/Accountant-sub002/pkg/sheet/models"
)

func TestCSVRoundTrip(t *testing.T) {
	s := ImportCSV("name,amount\nWidget,\"1,250.00\"")
	if got := s.Value("B2"); got != "1,250.00" {
		t.Fatalf("B2 = %q", got)
	}

	out := ImportCSV(ExportCSV(s))
	for ref, cell := range s.Cells {
		if out.Value(ref) != cell.Value {
			t.Errorf("cell %s = %q, want %q", ref, out.Value(ref), cell.Value)
		}
	}
}

func TestImportFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte("a;b\nc;d"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if s.Value("B2") != "d" {
		t.Errorf("B2 = %q, want \"d\"", s.Value("B2"))
	}
}

func TestExportFileXLSX(t *testing.T) {
	s := models.NewSheet()
	s.Cells["A1"] = models.Cell{Value: "x"}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")
	if err := ExportFile(s, path); err != nil {
		t.Fatalf("ExportFile failed: %v", err)
	}

	got, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if got.Value("A1") != "x" {
		t.Errorf("A1 = %q, want \"x\"", got.Value("A1"))
	}
}

func TestImportFileErrors(t *testing.T) {
	if _, err := ImportFile(filepath.Join(t.TempDir(), "absent.csv")); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("missing file error = %v, want ErrFileNotFound", err)
	}

	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportFile(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unsupported extension error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRendered(t *testing.T) {
	s := models.NewSheet()
	s.Cells["A1"] = models.Cell{Value: "1234.5", Format: models.FormatCurrency}
	s.Cells["B1"] = models.Cell{Value: "2024-03-05", Format: models.FormatDate}
	s.Cells["C1"] = models.Cell{Value: "hello", Bold: true}

	out := Rendered(s)
	if got := out.Value("A1"); got != "$1,234.50" {
		t.Errorf("A1 = %q", got)
	}
	if got := out.Value("B1"); got != "03/05/2024" {
		t.Errorf("B1 = %q", got)
	}
	if got := out.Value("C1"); got != "hello" {
		t.Errorf("C1 = %q", got)
	}
	// The source grid is untouched.
	if s.Value("A1") != "1234.5" {
		t.Errorf("source mutated: %q", s.Value("A1"))
	}
}
