package invoice

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// istZone is the fixed reference zone for all invoice dates. IST has no DST.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// groupIndian renders a non-negative integer with Indian digit grouping:
// the last three digits form one group, every two digits after that form
// another (12,34,567).
func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// formatRupees renders an amount for the PDF body, rounded to whole rupees.
// The built-in PDF core fonts are CP-1252 and carry no rupee glyph, so the
// document uses "Rs." rather than the sign.
func formatRupees(amount float64) string {
	return "Rs. " + groupIndian(int64(math.Round(amount)))
}

// FormatINR renders an amount for JSON responses, rounded to whole rupees,
// with the rupee sign and Indian digit grouping.
func FormatINR(amount float64) string {
	return "₹" + groupIndian(int64(math.Round(amount)))
}

// formatSlot renders a "HH:MM" pair as a 12-hour range, e.g. "2:00 PM - 3:00 PM".
func formatSlot(startTime, endTime string) (string, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return "", fmt.Errorf("invalid slot start %q: %w", startTime, err)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return "", fmt.Errorf("invalid slot end %q: %w", endTime, err)
	}
	return start.Format("3:04 PM") + " - " + end.Format("3:04 PM"), nil
}

// parseServiceDate accepts the backend's preferredDate as either a bare
// calendar date or a full RFC 3339 timestamp, and yields the calendar date
// in IST.
func parseServiceDate(preferredDate string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", preferredDate); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, preferredDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid preferred date %q: %w", preferredDate, err)
	}
	return t.In(istZone), nil
}
