package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"wildventures/internal/domain/models"
	"wildventures/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking documents.
type DocsService struct {
	RequestID string
}

// ConfirmationPDF renders the booking confirmation as a one-page PDF.
func (s DocsService) ConfirmationPDF(b models.Booking) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "confirmation_pdf", "ref="+b.Reference)
	return buildConfirmationPDF(b)
}

func buildConfirmationPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()

	pdf.SetFillColor(44, 94, 26)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 14, "WildVentures Booking Confirmation", "", 1, "C", true, 0, "")
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Dear %s,", safe(b.FullName, "guest")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Booking Details")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Reference      : %s", safe(b.Reference, "-")),
		fmt.Sprintf("Destination            : %s", safe(utils.TitleFromCode(b.Destination), "-")),
		fmt.Sprintf("Tour Package           : %s", safe(utils.TitleFromCode(b.TourPackage), "-")),
		fmt.Sprintf("Departure Date         : %s", dateOrDash(b.DepartureDate)),
		fmt.Sprintf("Return Date            : %s", dateOrDash(b.ReturnDate)),
		fmt.Sprintf("Duration               : %d days", b.Duration),
		fmt.Sprintf("Number of Participants : %d", b.Participants),
		fmt.Sprintf("Status                 : %s", safe(b.Status, "pending")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	if req := strings.TrimSpace(b.SpecialRequirements); req != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 6, "Special Requirements: "+req, "", "", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(44, 94, 26)
	pdf.Cell(0, 8, "Total Price: "+utils.FormatUSD(b.TotalPrice))
	pdf.Ln(14)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "A WildVentures representative will contact you within 24 hours to confirm your booking details. "+
		"Questions: support@wildventures.com or +1 (800) 123-4567.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("WILDVENTURES_%s.pdf", safeFilenamePart(b.Reference))
	return buf.Bytes(), filename, nil
}

func dateOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return utils.LongDate(t)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
