package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

func TestBuildCSVQuoting(t *testing.T) {
	out, err := BuildCSV([]string{"name", "note"}, [][]string{
		{"plain", `A,B"C`},
		{"multi", "line1\nline2"},
	})
	if err != nil {
		t.Fatalf("BuildCSV: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, `"A,B""C"`) {
		t.Errorf("comma+quote cell not escaped, got %q", got)
	}
	if !strings.Contains(got, "\"line1\nline2\"") {
		t.Errorf("newline cell not quoted, got %q", got)
	}
	if strings.Contains(got, `"plain"`) {
		t.Errorf("plain cell should not be quoted, got %q", got)
	}
}

func TestBuildCSVRoundTrip(t *testing.T) {
	rows := [][]string{
		{"Andi", `A,B"C`, "1000000"},
		{"Budi", "biasa", "0"},
	}
	out, err := BuildCSV([]string{"nama", "catatan", "nilai"}, rows)
	if err != nil {
		t.Fatalf("BuildCSV: %v", err)
	}
	parsed, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	if len(parsed) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(parsed))
	}
	for i, row := range rows {
		for j, cell := range row {
			if parsed[i+1][j] != cell {
				t.Errorf("cell [%d][%d] = %q, want %q", i, j, parsed[i+1][j], cell)
			}
		}
	}
}

func TestExportFilename(t *testing.T) {
	at := time.UnixMilli(1757000000000)
	got := ExportFilename("laporan-klien", PeriodMonth, at)
	want := "laporan-klien-month-1757000000000.csv"
	if got != want {
		t.Errorf("ExportFilename = %q, want %q", got, want)
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := map[int64]string{
		0:          "Rp 0",
		950:        "Rp 950",
		1000:       "Rp 1.000",
		1500000:    "Rp 1.500.000",
		2000000000: "Rp 2.000.000.000",
		-250000:    "-Rp 250.000",
	}
	for amount, want := range cases {
		if got := FormatRupiah(amount); got != want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", amount, got, want)
		}
	}
}
