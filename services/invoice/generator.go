package invoice

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"fixeify/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	filePrefix = "Fixeify_Invoice_"
	// fallbackReference stands in when a booking has no human-readable
	// reference yet.
	fallbackReference = "N/A"

	pageLeft     = 15.0
	contentWidth = 180.0
	lineHeight   = 6.0
)

// Document is a rendered invoice. It is never persisted; callers stream it to
// the user and regenerate on every request.
type Document struct {
	FileName string
	Bytes    []byte
}

// FileName builds the deterministic download name for an invoice generated at
// the given instant. Path-unsafe slashes are replaced with hyphens.
func FileName(reference string, now time.Time) string {
	if reference == "" {
		reference = fallbackReference
	}
	name := filePrefix + reference + "_" + now.In(istZone).Format("02-01-2006") + ".pdf"
	return strings.ReplaceAll(name, "/", "-")
}

// validate checks every field the layout depends on. A partial invoice (for
// example one with a missing total) would be actively misleading, so any gap
// fails the whole generation.
func validate(b models.Booking, q models.Quota) error {
	switch {
	case b.User.Name == "":
		return NewGenerationError("booking is missing customer details")
	case b.Pro.FirstName == "" && b.Pro.LastName == "":
		return NewGenerationError("booking is missing professional details")
	case b.Category.Name == "":
		return NewGenerationError("booking is missing service category")
	case b.Location.Address == "":
		return NewGenerationError("booking is missing service location")
	case b.PreferredDate == "":
		return NewGenerationError("booking is missing preferred date")
	case len(b.PreferredTime) == 0:
		return NewGenerationError("booking has no time slots")
	case q.LaborCost < 0:
		return NewGenerationError("quota has a negative labor cost")
	case q.TotalCost <= 0:
		return NewGenerationError("quota is missing a total cost")
	case !q.PaymentStatus.Valid():
		return NewGenerationError("quota is missing a payment status")
	}
	if _, err := parseServiceDate(b.PreferredDate); err != nil {
		return NewGenerationError("booking has an unreadable preferred date")
	}
	for _, slot := range b.PreferredTime {
		if _, err := formatSlot(slot.StartTime, slot.EndTime); err != nil {
			return NewGenerationError("booking has an unreadable time slot")
		}
	}
	return nil
}

// Generate lays out a single invoice for the (booking, quota) pair. The
// layout is fully deterministic: equal inputs and an equal generation instant
// produce byte-identical documents.
func Generate(b models.Booking, q models.Quota, now time.Time) (*Document, error) {
	model, err := buildLayout(b, q, now)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fixeify Invoice", false)
	pdf.SetCreationDate(now.In(istZone))
	pdf.SetMargins(pageLeft, 15, pageLeft)
	pdf.SetAutoPageBreak(true, 25)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(contentWidth, 5, "Thank you for choosing Fixeify.", "", 1, "C", false, 0, "")
		pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	drawHeader(pdf)
	drawMetadata(pdf, model)
	drawParties(pdf, model)
	drawServiceDetails(pdf, model)
	drawCostTable(pdf, model)
	drawPaymentStatus(pdf, model)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, NewGenerationError(fmt.Sprintf("pdf rendering failed: %v", err))
	}
	return &Document{
		FileName: FileName(b.BookingID, now),
		Bytes:    buf.Bytes(),
	}, nil
}

func drawHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(37, 99, 235)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetXY(pageLeft, 8)
	pdf.CellFormat(90, 12, "Fixeify", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(90, 12, "INVOICE", "", 0, "R", false, 0, "")
	pdf.SetY(34)
}

func drawMetadata(pdf *gofpdf.Fpdf, model *layoutModel) {
	rows := []struct {
		label, value string
	}{
		{"Booking Reference", model.Reference},
		{"Invoice Date", model.InvoiceDate},
		{"Service Date", model.ServiceDate},
		{"Booking Status", model.BookingStatus},
	}
	pdf.SetTextColor(30, 30, 30)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, lineHeight, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentWidth-45, lineHeight, row.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func drawParties(pdf *gofpdf.Fpdf, model *layoutModel) {
	const colWidth = 85.0
	startY := pdf.GetY()

	pdf.SetXY(pageLeft, startY)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colWidth, lineHeight, "Billed To", "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(colWidth, 5, model.CustomerLines, "", "L", false)
	leftEnd := pdf.GetY()

	pdf.SetXY(pageLeft+95, startY)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colWidth, lineHeight, "Service Professional", "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(pageLeft + 95)
	pdf.MultiCell(colWidth, 5, model.ProName, "", "L", false)
	rightEnd := pdf.GetY()

	if leftEnd > rightEnd {
		pdf.SetY(leftEnd)
	} else {
		pdf.SetY(rightEnd)
	}
	pdf.Ln(4)
}

func drawServiceDetails(pdf *gofpdf.Fpdf, model *layoutModel) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth, lineHeight, "Service Details", "", 1, "L", false, 0, "")

	rows := []struct {
		label, value string
	}{
		{"Category", model.Category},
		{"Issue", model.Issue},
		{"Location", model.Address},
		{"Time Slots", model.Slots},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(30, 5, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		// Free text wraps to the remaining column width rather than overflowing.
		pdf.MultiCell(contentWidth-30, 5, row.value, "", "L", false)
	}
	pdf.Ln(4)
}

func drawCostTable(pdf *gofpdf.Fpdf, model *layoutModel) {
	const amountWidth = 40.0
	descWidth := contentWidth - amountWidth

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(229, 231, 235)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(descWidth, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range model.CostRows {
		pdf.CellFormat(descWidth, 7, row.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, 7, row.Amount, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(254, 243, 199)
	pdf.CellFormat(descWidth, 8, model.Total.Label, "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 8, model.Total.Amount, "1", 1, "R", true, 0, "")
	pdf.Ln(4)
}

func drawPaymentStatus(pdf *gofpdf.Fpdf, model *layoutModel) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(model.StatusR, model.StatusG, model.StatusB)
	pdf.CellFormat(contentWidth, lineHeight, "Payment Status: "+strings.ToUpper(string(model.PaymentStatus)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(30, 30, 30)
}
