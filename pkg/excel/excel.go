// Package excel converts an uploaded .xlsx workbook into ordered column
// names plus rows keyed by column.
package excel

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("workbook has no data rows")

type Sheet struct {
	Columns []string
	Rows    []map[string]string
}

// Parse reads the first sheet; the first row is the header. Cells beyond the
// header width are dropped, short rows are padded with empty strings.
func Parse(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, ErrEmptySheet
	}

	columns := make([]string, 0, len(rows[0]))
	for _, c := range rows[0] {
		columns = append(columns, strings.TrimSpace(c))
	}

	out := &Sheet{Columns: columns}
	for _, raw := range rows[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if col == "" {
				continue
			}
			if i < len(raw) {
				row[col] = strings.TrimSpace(raw[i])
			} else {
				row[col] = ""
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}
