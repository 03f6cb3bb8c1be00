package xlsexport

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	minColWidth = 10
	maxColWidth = 60
)

// Sheet is one worksheet of the workbook export.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// ExportWorkbook writes every sheet with a frozen, filterable header row.
func ExportWorkbook(sheets []Sheet) (*bytes.Buffer, error) {
	if len(sheets) == 0 {
		return nil, errors.New("no sheets to export")
	}
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	styles, err := newStyles(f)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx style create failed")
	}
	defaultSheet := f.GetSheetName(0)
	for idx, sheet := range sheets {
		if idx == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				return nil, errors.Wrap(err, "xlsx sheet rename failed")
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, errors.Wrap(err, "xlsx sheet create failed")
		}
		if err := writeSheet(f, styles, sheet); err != nil {
			return nil, errors.Wrapf(err, "xlsx write failed for %s", sheet.Name)
		}
	}
	f.SetActiveSheet(0)
	return f.WriteToBuffer()
}

type sheetStyles struct {
	header int
	data   int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Bold: true, Family: "Arial", Size: 10, Color: "1F3864"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
		Border:    []excelize.Border{{Type: "bottom", Color: "8EA9DB", Style: 2}},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	data, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Font:      &excelize.Font{Family: "Arial", Size: 10},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	return sheetStyles{header: header, data: data}, nil
}

func writeSheet(f *excelize.File, styles sheetStyles, sheet Sheet) error {
	cols := len(sheet.Headers)
	if cols == 0 {
		return errors.New("sheet has no columns")
	}
	lastCell, err := excelize.CoordinatesToCellName(cols, len(sheet.Rows)+1)
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	headers := sheet.Headers
	if err = f.SetSheetRow(sheet.Name, "A1", &headers); err != nil {
		return err
	}
	if err = f.SetCellStyle(sheet.Name, "A1", lastHeader, styles.header); err != nil {
		return err
	}
	for idx, values := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return err
		}
	}
	if len(sheet.Rows) > 0 {
		if err = f.SetCellStyle(sheet.Name, "A2", lastCell, styles.data); err != nil {
			return err
		}
	}
	if err = setColWidths(f, sheet); err != nil {
		return err
	}
	if err = f.AutoFilter(sheet.Name, "A1:"+lastCell, nil); err != nil {
		return err
	}
	return f.SetPanes(sheet.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// setColWidths sizes each column to its longest value within [minColWidth, maxColWidth].
func setColWidths(f *excelize.File, sheet Sheet) error {
	for idx, header := range sheet.Headers {
		width := utf8.RuneCountInString(header)
		for _, values := range sheet.Rows {
			if idx < len(values) {
				width = max(width, utf8.RuneCountInString(values[idx]))
			}
		}
		col, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return err
		}
		if err = f.SetColWidth(sheet.Name, col, col, float64(min(max(width+2, minColWidth), maxColWidth))); err != nil {
			return err
		}
	}
	return nil
}
