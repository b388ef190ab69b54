package sheet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Submissions"

// XLSXRecorder appends rows to a local workbook, creating it with a
// header row on first use.
type XLSXRecorder struct {
	mu      sync.Mutex
	path    string
	headers []string
}

func NewXLSXRecorder(path string, headers []string) *XLSXRecorder {
	return &XLSXRecorder{path: path, headers: headers}
}

func (x *XLSXRecorder) Append(ctx context.Context, row Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	f, err := x.open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(xlsxSheetName)
	if err != nil {
		return fmt.Errorf("xlsx: read rows: %w", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	values := make([]interface{}, len(row.Values))
	for i, v := range row.Values {
		values[i] = sanitizeExcelCell(v)
	}
	if err := f.SetSheetRow(xlsxSheetName, cell, &values); err != nil {
		return fmt.Errorf("xlsx: write row %s: %w", row.ID, err)
	}

	if err := f.SaveAs(x.path); err != nil {
		return fmt.Errorf("xlsx: save workbook: %w", err)
	}
	return nil
}

func (x *XLSXRecorder) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(x.path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("xlsx: open workbook: %w", err)
	}

	if dir := filepath.Dir(x.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("xlsx: create directory: %w", err)
		}
	}

	f = excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	header := make([]interface{}, len(x.headers))
	for i, h := range x.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("xlsx: write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(x.headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(x.headers), 1)
		_ = f.SetCellStyle(xlsxSheetName, "A1", last, bold)
	}
	return f, nil
}

// sanitizeExcelCell stops user input from being evaluated as a formula.
func sanitizeExcelCell(s string) string {
	if s == "" {
		return s
	}
	if strings.ContainsRune("=+-@\t\r|", rune(s[0])) {
		return "'" + s
	}
	return s
}
