package payment

import (
	"strconv"
	"strings"
	"time"

	"fixeify/models"
)

// istZone is the fixed reference zone for the payment-window rule. IST has no
// DST, so wall-clock comparisons need no adjustment.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// WindowOpen reports whether payment for a booking may begin: only after the
// last booked time slot has ended, evaluated on IST wall clocks at minute
// granularity. Missing or unreadable slot data yields a closed window — never
// allow early payment. Callers must re-evaluate on every check; the result
// depends on now.
func WindowOpen(preferredDate string, slots []models.TimeSlot, now time.Time) bool {
	if len(slots) == 0 {
		return false
	}
	maxEnd := -1
	for _, slot := range slots {
		minutes, ok := minuteOfDay(slot.EndTime)
		if !ok {
			return false
		}
		if minutes > maxEnd {
			maxEnd = minutes
		}
	}

	day, ok := parseDate(preferredDate)
	if !ok {
		return false
	}
	release := time.Date(day.Year(), day.Month(), day.Day(), maxEnd/60, maxEnd%60, 0, 0, istZone)
	return !now.In(istZone).Before(release)
}

// minuteOfDay parses a 24-hour "HH:MM" string into minutes from midnight.
func minuteOfDay(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// parseDate accepts a bare calendar date or a full RFC 3339 timestamp and
// yields the calendar date interpreted in IST.
func parseDate(preferredDate string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", preferredDate); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, preferredDate); err == nil {
		return t.In(istZone), true
	}
	return time.Time{}, false
}
