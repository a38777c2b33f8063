package ticket

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voyago/models"
	"voyago/services/quote"

	"github.com/phpdave11/gofpdf"
)

// BuildTicketPDF renders the e-ticket for a paid booking, including the
// receipt breakdown forwarded from the quote. Returns the PDF bytes and the
// suggested filename.
func BuildTicketPDF(bk *models.Booking, inv *models.Invoice) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Traveler      : %s", orDash(bk.TravelerName)),
		fmt.Sprintf("Booking       : %s", bk.ID),
		fmt.Sprintf("Type          : %s", orDash(bk.Kind)),
		fmt.Sprintf("Product       : %s", orDash(bk.ProductRef)),
		fmt.Sprintf("Travel date   : %s", orDash(bk.TravelDate)),
		fmt.Sprintf("Seats         : %s", orDash(strings.Join(bk.Seats, ", "))),
		fmt.Sprintf("Invoice       : %s", inv.InvoiceID),
		fmt.Sprintf("Paid via      : %s", inv.Method),
		fmt.Sprintf("Issued        : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Receipt")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range bk.Lines {
		row := fmt.Sprintf("%dx %-32s %s", line.Quantity, line.Label, quote.Format(line.Amount, bk.Currency))
		pdf.Cell(0, 6, row)
		pdf.Ln(6)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+quote.Format(bk.Total, bk.Currency))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket at check-in. One ticket per booking.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", bk.ID)
	return buf.Bytes(), filename, nil
}

// WriteTicket renders the ticket and writes it into the configured directory.
func WriteTicket(dir string, bk *models.Booking, inv *models.Invoice) (string, error) {
	data, filename, err := BuildTicketPDF(bk, inv)
	if err != nil {
		return "", fmt.Errorf("failed to render e-ticket: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create ticket directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write e-ticket: %w", err)
	}
	return path, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
