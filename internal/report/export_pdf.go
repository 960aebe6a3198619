package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
)

// ExportPDF renders the report as a one-page A4 document.
func ExportPDF(r Report) (*bytes.Buffer, error) {
	if len(r.Trend) == 0 && len(r.Categories) == 0 {
		return nil, apperrors.ErrNothingToExport
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Financial Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Financial Report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Viewing report for: %s", r.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Spending Trend")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range r.Trend {
		pdf.CellFormat(40, 7, p.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.0f%%", p.Value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Expense Categories")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for _, c := range r.Categories {
		pdf.CellFormat(40, 7, c.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.0f%%", c.Percent), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	if len(r.Spenders) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Top Spenders")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for i, sp := range r.Spenders {
			pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
			pdf.CellFormat(60, 7, sp.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("$%.2f", sp.Amount), "1", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return &buf, nil
}
