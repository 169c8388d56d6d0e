package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupIndian(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1234, "1,234"},
		{99999, "99,999"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupIndian(tt.in), "groupIndian(%d)", tt.in)
	}
}

func TestFormatRupeesRoundsToWholeUnits(t *testing.T) {
	assert.Equal(t, "Rs. 500", formatRupees(500))
	assert.Equal(t, "Rs. 500", formatRupees(499.5))
	assert.Equal(t, "Rs. 499", formatRupees(499.4))
	assert.Equal(t, "Rs. 1,23,457", formatRupees(123456.78))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹500", FormatINR(500))
	assert.Equal(t, "₹12,34,567", FormatINR(1234567.2))
}

func TestFormatSlot(t *testing.T) {
	got, err := formatSlot("14:00", "15:00")
	require.NoError(t, err)
	assert.Equal(t, "2:00 PM - 3:00 PM", got)

	got, err = formatSlot("09:30", "11:45")
	require.NoError(t, err)
	assert.Equal(t, "9:30 AM - 11:45 AM", got)

	got, err = formatSlot("00:00", "12:00")
	require.NoError(t, err)
	assert.Equal(t, "12:00 AM - 12:00 PM", got)

	_, err = formatSlot("14:00", "25:00")
	assert.Error(t, err)
	_, err = formatSlot("soon", "15:00")
	assert.Error(t, err)
}
