package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/dmstancu/workshop-api/internal/models"
)

// ExportService renders a work order as a PDF document. Renderer failures
// are infrastructure errors, reported apart from the data-layer taxonomy.
type ExportService struct{}

// NewExportService creates a new ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// RenderWorkOrderPDF renders the work order with its line items and status
// label. Returns the document bytes and the suggested file name.
func (s *ExportService) RenderWorkOrderPDF(order *models.WorkOrder) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 12.0
	marginY := 10.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Fisa de lucru #%d", order.ID)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Data: %s", order.Data.Format("02.01.2006 15:04"))))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Nr. inmatriculare: %s", order.PlateNumber)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Tip auto: %s", order.VehicleType)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Mecanic: %s", order.MechanicName)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Status: %s", models.StatusLabel(order.Status))))
	pdf.Ln(7)
	if order.ClientName != "" {
		pdf.Cell(0, 7, tr(fmt.Sprintf("Client: %s %s", order.ClientName, order.ClientPhone)))
		pdf.Ln(7)
	}
	if order.Description != "" {
		pdf.MultiCell(0, 6, tr(order.Description), "", "L", false)
	}
	pdf.Ln(5)

	headers := []string{"Descriere", "Cant.", "Pret unitar", "Total"}
	colWidths := []float64{96, 20, 35, 35}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(colWidths[0], 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, formatMinorUnits(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, formatMinorUnits(item.Total()), "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total net: %s", formatMinorUnits(order.TotalNet))))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("TVA (%d%%): %s", order.VATRate, formatMinorUnits(order.VATAmount))))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total: %s", formatMinorUnits(order.TotalGross))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("pdf renderer failed: %w", err)
	}

	filename := fmt.Sprintf("Fisa_%s_%d.pdf", order.PlateNumber, order.ID)
	return buf.Bytes(), filename, nil
}

// formatMinorUnits renders integer minor units as a decimal amount.
func formatMinorUnits(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}
