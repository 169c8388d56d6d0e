package invoice

import (
	"strings"
	"time"

	"fixeify/models"
)

// costRow is one line of the cost table, amount already formatted.
type costRow struct {
	Label  string
	Amount string
}

// layoutModel is the fully resolved content of an invoice, computed before any
// drawing happens. Splitting this out keeps the arithmetic and formatting
// testable without parsing PDF output.
type layoutModel struct {
	Reference     string
	InvoiceDate   string
	ServiceDate   string
	BookingStatus string

	CustomerLines string
	ProName       string

	Category string
	Issue    string
	Address  string
	Slots    string

	CostRows []costRow
	Total    costRow

	PaymentStatus models.PaymentStatus
	StatusR       int
	StatusG       int
	StatusB       int
}

// buildLayout validates the snapshots and resolves every rendered value. The
// total row carries the quota's stored totalCost verbatim; it is never
// recomputed from the components here.
func buildLayout(b models.Booking, q models.Quota, now time.Time) (*layoutModel, error) {
	if err := validate(b, q); err != nil {
		return nil, err
	}

	serviceDate, _ := parseServiceDate(b.PreferredDate)

	slots := make([]string, 0, len(b.PreferredTime))
	for _, slot := range b.PreferredTime {
		formatted, _ := formatSlot(slot.StartTime, slot.EndTime) // validated above
		slots = append(slots, formatted)
	}

	rows := []costRow{{Label: "Labor Cost", Amount: formatRupees(q.LaborCost)}}
	if q.MaterialCost > 0 {
		rows = append(rows, costRow{Label: "Material Cost", Amount: formatRupees(q.MaterialCost)})
	}
	if q.AdditionalCharges > 0 {
		rows = append(rows, costRow{Label: "Additional Charges", Amount: formatRupees(q.AdditionalCharges)})
	}

	reference := b.BookingID
	if reference == "" {
		reference = fallbackReference
	}

	r, g, bl := statusColor(q.PaymentStatus)
	return &layoutModel{
		Reference:     reference,
		InvoiceDate:   now.In(istZone).Format("02-01-2006"),
		ServiceDate:   serviceDate.Format("02-01-2006"),
		BookingStatus: strings.ToUpper(b.Status),
		CustomerLines: b.User.Name + "\n" + b.User.Email + "\n" + b.PhoneNumber,
		ProName:       strings.TrimSpace(b.Pro.FirstName + " " + b.Pro.LastName),
		Category:      b.Category.Name,
		Issue:         b.IssueDescription,
		Address:       b.Location.Address + ", " + b.Location.City + ", " + b.Location.State,
		Slots:         strings.Join(slots, ", "),
		CostRows:      rows,
		Total:         costRow{Label: "TOTAL AMOUNT", Amount: formatRupees(q.TotalCost)},
		PaymentStatus: q.PaymentStatus,
		StatusR:       r,
		StatusG:       g,
		StatusB:       bl,
	}, nil
}

// statusColor maps a payment status to its RGB: green for completed, red for
// failed, orange for pending.
func statusColor(status models.PaymentStatus) (int, int, int) {
	switch status {
	case models.PaymentCompleted:
		return 22, 163, 74
	case models.PaymentFailed:
		return 220, 38, 38
	default:
		return 217, 119, 6
	}
}
