package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BuildCSV serializes a header row plus a grid of cells. Cells containing a
// comma, double quote or newline are quoted with internal quotes doubled;
// everything else is written bare. Rows are joined with \n.
func BuildCSV(headers []string, rows [][]string) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	w.UseCRLF = false
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename builds the download name: <report>-<period>-<unix-ms>.csv.
// The timestamp suffix keeps repeated exports from colliding.
func ExportFilename(report string, p Period, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d.csv", report, p, now.UnixMilli())
}

// FormatRupiah renders an amount the way the app displays money:
// "Rp 1.500.000". Display only; aggregation always runs on raw int64.
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("Rp ")
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(".")
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
