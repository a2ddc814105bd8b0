package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "RUPEES ZERO ONLY"},
		{"15", "RUPEES FIFTEEN ONLY"},
		{"101", "RUPEES ONE HUNDRED ONE ONLY"},
		{"250000.50", "RUPEES TWO LAKH FIFTY THOUSAND AND FIFTY PAISE ONLY"},
		{"12500000", "RUPEES ONE CRORE TWENTY FIVE LAKH ONLY"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountToWords(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹0.00", FormatINR(decimal.Zero))
	assert.Equal(t, "₹999.00", FormatINR(decimal.NewFromInt(999)))
	assert.Equal(t, "₹1,000.00", FormatINR(decimal.NewFromInt(1000)))
	assert.Equal(t, "₹12,34,567.50", FormatINR(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-₹50,000.00", FormatINR(decimal.NewFromInt(-50000)))
}
