package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fieldmap/internal/model"
)

// ReadWorkbook decodes the first sheet of an xlsx file into raw records.
// The first row is the header row; every following row becomes one RawRecord
// with cells keyed by header, in source column order. Rows that are entirely
// empty are skipped.
func ReadWorkbook(path string) ([]*model.RawRecord, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := rows[0]
	records := make([]*model.RawRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := model.NewRawRecord()
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if cell != "" {
				empty = false
			}
			record.Set(header, cell)
		}
		if empty {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
