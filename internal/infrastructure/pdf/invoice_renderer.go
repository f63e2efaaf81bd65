// Package pdf renders invoices to PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/atelierworks/ffe-portal/internal/api/metrics"
	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// InvoiceRenderer produces a single-page PDF for an invoice.
type InvoiceRenderer struct {
	companyName string
}

// NewInvoiceRenderer returns a renderer that stamps companyName in the
// document header.
func NewInvoiceRenderer(companyName string) *InvoiceRenderer {
	return &InvoiceRenderer{companyName: companyName}
}

// Render produces the PDF bytes for an invoice.
func (r *InvoiceRenderer) Render(inv *domain.Invoice) ([]byte, error) {
	start := time.Now()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Invoice %s", inv.Number), true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 12, r.companyName)
	doc.Ln(16)

	doc.SetFont("Helvetica", "B", 14)
	doc.Cell(0, 8, fmt.Sprintf("Invoice %s", inv.Number))
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Status", string(inv.Status)},
		{"Issued by", inv.ContractorName},
		{"Issued", inv.CreatedAt.Format("2006-01-02")},
		{"Last updated", inv.UpdatedAt.Format("2006-01-02")},
	}
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(40, 7, row[0], "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 11)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(130, 8, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(0, 8, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(130, 8, inv.Description, "1", 0, "L", false, 0, "")
	doc.CellFormat(0, 8, formatAmount(inv.AmountCents, inv.Currency), "1", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(130, 8, "Total", "1", 0, "R", false, 0, "")
	doc.CellFormat(0, 8, formatAmount(inv.AmountCents, inv.Currency), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", inv.ID, err)
	}

	metrics.InvoicePDFDuration.Observe(time.Since(start).Seconds())
	return buf.Bytes(), nil
}

func formatAmount(cents int64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, float64(cents)/100)
}
