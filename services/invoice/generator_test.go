package invoice

import (
	"strings"
	"testing"
	"time"

	"fixeify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 5, 10, 0, 0, 0, istZone)

func testBooking() models.Booking {
	return models.Booking{
		ID:               "665f1c0a9d2b4c0012345678",
		BookingID:        "FXB-2025-0042",
		User:             models.UserRef{ID: "u1", Name: "Asha Nair", Email: "asha@example.com"},
		Pro:              models.ProRef{ID: "p1", FirstName: "Ravi", LastName: "Menon"},
		Category:         models.CategoryRef{ID: "c1", Name: "Plumbing"},
		IssueDescription: "Kitchen sink leaking under the counter",
		Location: models.Location{
			Address: "14 MG Road",
			City:    "Kochi",
			State:   "Kerala",
		},
		PhoneNumber:   "+91 98765 43210",
		PreferredDate: "2025-06-01",
		PreferredTime: []models.TimeSlot{{StartTime: "14:00", EndTime: "15:00", Booked: true}},
		Status:        models.BookingCompleted,
	}
}

func testQuota() models.Quota {
	return models.Quota{
		ID:            "q1",
		BookingID:     "665f1c0a9d2b4c0012345678",
		LaborCost:     500,
		TotalCost:     500,
		PaymentStatus: models.PaymentCompleted,
	}
}

func TestLayoutLaborOnlyQuota(t *testing.T) {
	// A quota with zero material and additional costs renders only the labor
	// row and the stored total.
	model, err := buildLayout(testBooking(), testQuota(), fixedNow)
	require.NoError(t, err)

	require.Len(t, model.CostRows, 1)
	assert.Equal(t, costRow{Label: "Labor Cost", Amount: "Rs. 500"}, model.CostRows[0])
	assert.Equal(t, costRow{Label: "TOTAL AMOUNT", Amount: "Rs. 500"}, model.Total)
	assert.Equal(t, models.PaymentCompleted, model.PaymentStatus)
	// Completed renders green.
	assert.Equal(t, [3]int{22, 163, 74}, [3]int{model.StatusR, model.StatusG, model.StatusB})
}

func TestLayoutOptionalCostRows(t *testing.T) {
	quota := testQuota()
	quota.MaterialCost = 150
	quota.AdditionalCharges = 50
	quota.TotalCost = 700

	model, err := buildLayout(testBooking(), quota, fixedNow)
	require.NoError(t, err)

	require.Len(t, model.CostRows, 3)
	assert.Equal(t, "Material Cost", model.CostRows[1].Label)
	assert.Equal(t, "Rs. 150", model.CostRows[1].Amount)
	assert.Equal(t, "Additional Charges", model.CostRows[2].Label)
	assert.Equal(t, "Rs. 50", model.CostRows[2].Amount)
	assert.Equal(t, "Rs. 700", model.Total.Amount)
}

func TestLayoutTotalIsStoredNotRecomputed(t *testing.T) {
	// The backend's totalCost is authoritative; the engine must not derive its
	// own sum that could diverge from it.
	quota := testQuota()
	quota.LaborCost = 500
	quota.TotalCost = 550 // deliberately inconsistent with the components

	model, err := buildLayout(testBooking(), quota, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Rs. 550", model.Total.Amount)
}

func TestLayoutStatusColors(t *testing.T) {
	tests := []struct {
		status models.PaymentStatus
		want   [3]int
	}{
		{models.PaymentCompleted, [3]int{22, 163, 74}},
		{models.PaymentFailed, [3]int{220, 38, 38}},
		{models.PaymentPending, [3]int{217, 119, 6}},
	}
	for _, tt := range tests {
		quota := testQuota()
		quota.PaymentStatus = tt.status
		model, err := buildLayout(testBooking(), quota, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, tt.want, [3]int{model.StatusR, model.StatusG, model.StatusB}, string(tt.status))
	}
}

func TestLayoutFormatsSlotsAndDates(t *testing.T) {
	booking := testBooking()
	booking.PreferredTime = append(booking.PreferredTime, models.TimeSlot{StartTime: "16:30", EndTime: "17:30", Booked: true})

	model, err := buildLayout(booking, testQuota(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "2:00 PM - 3:00 PM, 4:30 PM - 5:30 PM", model.Slots)
	assert.Equal(t, "01-06-2025", model.ServiceDate)
	assert.Equal(t, "05-06-2025", model.InvoiceDate)
	assert.Equal(t, "14 MG Road, Kochi, Kerala", model.Address)
	assert.Equal(t, "Ravi Menon", model.ProName)
	assert.Equal(t, "COMPLETED", model.BookingStatus)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Fixeify_Invoice_FXB-2025-0042_05-06-2025.pdf", FileName("FXB-2025-0042", fixedNow))
	// Path-unsafe slashes are replaced.
	assert.Equal(t, "Fixeify_Invoice_FXB-2025-42-A_05-06-2025.pdf", FileName("FXB/2025/42/A", fixedNow))
	// Missing reference falls back to the placeholder (slash replaced too).
	assert.Equal(t, "Fixeify_Invoice_N-A_05-06-2025.pdf", FileName("", fixedNow))
}

func TestGenerateProducesPDF(t *testing.T) {
	doc, err := Generate(testBooking(), testQuota(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Fixeify_Invoice_FXB-2025-0042_05-06-2025.pdf", doc.FileName)
	require.NotEmpty(t, doc.Bytes)
	assert.True(t, strings.HasPrefix(string(doc.Bytes[:5]), "%PDF-"))
}

func TestGenerateIsDeterministic(t *testing.T) {
	first, err := Generate(testBooking(), testQuota(), fixedNow)
	require.NoError(t, err)
	second, err := Generate(testBooking(), testQuota(), fixedNow)
	require.NoError(t, err)
	// Equal inputs and an equal generation instant yield identical bytes.
	assert.Equal(t, first.Bytes, second.Bytes)

	later, err := Generate(testBooking(), testQuota(), fixedNow.Add(24*time.Hour))
	require.NoError(t, err)
	assert.NotEqual(t, first.Bytes, later.Bytes)
}

func TestGenerateRejectsIncompleteSnapshots(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *models.Booking, q *models.Quota)
	}{
		{"missing customer", func(b *models.Booking, q *models.Quota) { b.User.Name = "" }},
		{"missing professional", func(b *models.Booking, q *models.Quota) { b.Pro = models.ProRef{} }},
		{"missing category", func(b *models.Booking, q *models.Quota) { b.Category.Name = "" }},
		{"missing location", func(b *models.Booking, q *models.Quota) { b.Location.Address = "" }},
		{"missing date", func(b *models.Booking, q *models.Quota) { b.PreferredDate = "" }},
		{"unreadable date", func(b *models.Booking, q *models.Quota) { b.PreferredDate = "next tuesday" }},
		{"no slots", func(b *models.Booking, q *models.Quota) { b.PreferredTime = nil }},
		{"unreadable slot", func(b *models.Booking, q *models.Quota) { b.PreferredTime[0].EndTime = "late" }},
		{"negative labor cost", func(b *models.Booking, q *models.Quota) { q.LaborCost = -1 }},
		{"missing total", func(b *models.Booking, q *models.Quota) { q.TotalCost = 0 }},
		{"missing payment status", func(b *models.Booking, q *models.Quota) { q.PaymentStatus = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := testBooking()
			quota := testQuota()
			tt.mutate(&booking, &quota)

			doc, err := Generate(booking, quota, fixedNow)
			assert.Nil(t, doc)
			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, "generationFailed", genErr.Code)
		})
	}
}

func TestGenerateWrapsLongFreeText(t *testing.T) {
	booking := testBooking()
	booking.IssueDescription = strings.Repeat("The main bathroom tap keeps dripping even when fully closed. ", 10)
	booking.Location.Address = strings.Repeat("Flat 4B, Sunrise Apartments, Seaport Airport Road ", 5)

	doc, err := Generate(booking, testQuota(), fixedNow)
	require.NoError(t, err)
	require.NotEmpty(t, doc.Bytes)
}
