package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/tealeg/xlsx/v2"
)

func TestWriteExcel_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deal.xlsx")

	if err := WriteExcel(testResult(), path); err != nil {
		t.Fatalf("WriteExcel failed: %v", err)
	}

	f, err := xlsx.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}

	for _, name := range []string{"Summary", "Cash Flows", "Input Data", "Sensitivity"} {
		if _, ok := f.Sheet[name]; !ok {
			t.Errorf("expected sheet %q", name)
		}
	}

	// Three projected years plus the header row
	cf := f.Sheet["Cash Flows"]
	if len(cf.Rows) != 4 {
		t.Errorf("expected 4 rows in Cash Flows, got %d", len(cf.Rows))
	}

	// Header plus one row per ingested field
	input := f.Sheet["Input Data"]
	if len(input.Rows) != 4 {
		t.Errorf("expected 4 rows in Input Data, got %d", len(input.Rows))
	}
}

func TestWriteExcel_BadPath(t *testing.T) {
	if err := WriteExcel(testResult(), "/no/such/dir/deal.xlsx"); err == nil {
		t.Error("expected error for unwritable path")
	}
}
