// Package spreadsheet is the tabular boundary: it parses master-list uploads
// (.xlsx) and writes the CSV downloads. It knows nothing about storage.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"chemstock/models"
)

// RequiredColumns is the upload header contract: matched exactly after
// trimming whitespace, case-sensitive.
var RequiredColumns = []string{"S.NO.", "Names", "Quantity", "Units", "Q.Issued", "Q.Remaining", "CAS.No."}

// SchemaError reports required columns missing from an upload.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "spreadsheet missing required columns: " + strings.Join(e.Missing, ", ")
}

// ParseMasterList reads the first sheet of an xlsx workbook: one header row,
// data rows follow. Missing numeric cells default to 0; an absent remaining
// is computed as total - issued (0 when total is also absent). Rows with an
// empty name are skipped and a duplicate name keeps the last row.
func ParseMasterList(r io.Reader) ([]models.Chemical, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SchemaError{Missing: RequiredColumns}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Missing: RequiredColumns}
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, want := range RequiredColumns {
		if _, ok := col[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	cell := func(row []string, name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	byName := map[string]int{}
	var out []models.Chemical
	for _, row := range rows[1:] {
		name := cell(row, "Names")
		if name == "" {
			continue
		}
		total := parseFloat(cell(row, "Quantity"))
		issued := parseFloat(cell(row, "Q.Issued"))
		remaining := total - issued
		if total == 0 {
			remaining = 0
		}
		if v := cell(row, "Q.Remaining"); v != "" {
			remaining = parseFloat(v)
		}
		c := models.Chemical{
			SerialNo:  parseInt(cell(row, "S.NO.")),
			Name:      name,
			Total:     total,
			Remaining: remaining,
			Issued:    issued,
			Unit:      cell(row, "Units"),
			CASNo:     cell(row, "CAS.No."),
		}
		if i, dup := byName[name]; dup {
			out[i] = c
			continue
		}
		byName[name] = len(out)
		out = append(out, c)
	}
	return out, nil
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	// Some workbooks store serial numbers as "1.0".
	return int(parseFloat(s))
}

// WriteChemicalsCSV writes the master list download.
func WriteChemicalsCSV(w io.Writer, rows []models.Chemical) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"serial", "chemical", "total", "remaining", "issued", "unit", "cas"}); err != nil {
		return err
	}
	for _, c := range rows {
		rec := []string{
			strconv.Itoa(c.SerialNo),
			c.Name,
			formatFloat(c.Total),
			formatFloat(c.Remaining),
			formatFloat(c.Issued),
			c.Unit,
			c.CASNo,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteIssuancesCSV writes the issuance log download.
func WriteIssuancesCSV(w io.Writer, rows []models.Issuance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"requester", "chemical", "amount", "issuer", "timestamp"}); err != nil {
		return err
	}
	for _, rec := range rows {
		row := []string{
			rec.Username,
			rec.Chemical,
			formatFloat(rec.Amount),
			rec.IssuedBy,
			rec.IssuedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
