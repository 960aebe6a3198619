package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
)

const (
	sheetCategories = "Categories"
	sheetTrend      = "Trend"
	sheetSpenders   = "Spenders"
)

type workbook struct {
	file        *excelize.File
	headerStyle int
}

// ExportXLSX writes the report as a workbook with one sheet each for the
// category split, the weekly trend and the spender ranking.
func ExportXLSX(r Report) (*bytes.Buffer, error) {
	if len(r.Trend) == 0 && len(r.Categories) == 0 {
		return nil, apperrors.ErrNothingToExport
	}

	wb := &workbook{file: excelize.NewFile()}
	defer wb.file.Close()

	style, err := wb.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	wb.headerStyle = style

	categories := make([][]interface{}, len(r.Categories))
	for i, c := range r.Categories {
		categories[i] = []interface{}{c.Label, c.Percent}
	}
	if err := wb.addSheet(sheetCategories, []interface{}{"Category", "Percent"}, categories); err != nil {
		return nil, err
	}

	trend := make([][]interface{}, len(r.Trend))
	for i, p := range r.Trend {
		trend[i] = []interface{}{p.Label, p.Value}
	}
	if err := wb.addSheet(sheetTrend, []interface{}{"Period", "Value"}, trend); err != nil {
		return nil, err
	}

	spenders := make([][]interface{}, len(r.Spenders))
	for i, sp := range r.Spenders {
		spenders[i] = []interface{}{i + 1, sp.Name, sp.Amount}
	}
	if err := wb.addSheet(sheetSpenders, []interface{}{"Rank", "Name", "Amount"}, spenders); err != nil {
		return nil, err
	}

	if err := wb.file.SetCellValue(sheetCategories, "D1", r.Title); err != nil {
		return nil, fmt.Errorf("failed to write title: %w", err)
	}

	if idx, _ := wb.file.GetSheetIndex("Sheet1"); idx != -1 {
		if err := wb.file.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to delete default sheet 'Sheet1': %w", err)
		}
	}

	if idx, _ := wb.file.GetSheetIndex(sheetCategories); idx != -1 {
		wb.file.SetActiveSheet(idx)
	}

	buffer, err := wb.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buffer, nil
}

func (wb *workbook) addSheet(name string, headers []interface{}, rows [][]interface{}) error {
	if _, err := wb.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet '%s': %w", name, err)
	}

	if err := wb.file.SetSheetRow(name, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write headers to '%s': %w", name, err)
	}

	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := wb.file.SetCellStyle(name, "A1", last, wb.headerStyle); err != nil {
		return fmt.Errorf("failed to style headers of '%s': %w", name, err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2) // row 1 is the header
		if err := wb.file.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to add row %d to '%s': %w", i+2, name, err)
		}
	}

	if err := wb.file.SetColWidth(name, "A", "C", 20); err != nil {
		return fmt.Errorf("failed to set column width on '%s': %w", name, err)
	}
	return nil
}
