package export

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"zabka-atlas/internal/shops"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX_RowsAreNonDecreasingInLongitude(t *testing.T) {
	records := []shops.Record{
		{Lon: 17.102, Lat: 51.12, Name: "Żabka", Address: "Rynek 5"},
		{Lon: 16.987, Lat: 51.09, Name: "Żabka", Address: "Legnicka 58"},
		{Lon: 17.044, Lat: 51.11, Name: "Żabka", Address: "Adres niedostępny"},
	}
	path := filepath.Join(t.TempDir(), "shops.xlsx")

	if err := WriteXLSX(records, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].Lon != 17.102 {
		t.Fatal("input slice must not be reordered")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen spreadsheet: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 records, got %d rows", len(rows))
	}
	for col, want := range header {
		if rows[0][col] != want {
			t.Fatalf("expected header %q in column %d, got %q", want, col, rows[0][col])
		}
	}

	prev := -181.0
	for i, row := range rows[1:] {
		lon, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			t.Fatalf("row %d longitude not numeric: %v", i, err)
		}
		if lon < prev {
			t.Fatalf("row %d breaks longitude ordering: %v < %v", i, lon, prev)
		}
		prev = lon
	}
}

func TestWriteXLSX_EmptySetWritesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shops.xlsx")

	err := WriteXLSX(nil, path)
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no file on disk, stat returned %v", statErr)
	}
}
