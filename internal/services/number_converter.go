package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountToWords converts a rupee amount to words using the Indian numbering
// system. Example: 250000.50 -> "RUPEES TWO LAKH FIFTY THOUSAND AND FIFTY PAISE ONLY"
func AmountToWords(amount decimal.Decimal) string {
	amount = amount.Round(2)
	if amount.IsZero() {
		return "RUPEES ZERO ONLY"
	}

	prefix := ""
	if amount.IsNegative() {
		prefix = "MINUS "
		amount = amount.Neg()
	}

	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	words := "RUPEES " + convertNumberToWords(rupees)
	if paise > 0 {
		words += " AND " + convertNumberToWords(paise) + " PAISE"
	}
	return prefix + words + " ONLY"
}

func convertNumberToWords(n int64) string {
	if n == 0 {
		return "ZERO"
	}

	if n < 20 {
		return ones[n]
	}

	if n < 100 {
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " " + ones[n%10]
	}

	if n < 1000 {
		return joinScale(n/100, "HUNDRED", n%100)
	}

	if n < 100000 {
		return joinScale(n/1000, "THOUSAND", n%1000)
	}

	if n < 10000000 {
		return joinScale(n/100000, "LAKH", n%100000)
	}

	return joinScale(n/10000000, "CRORE", n%10000000)
}

func joinScale(count int64, scale string, remainder int64) string {
	text := convertNumberToWords(count) + " " + scale
	if remainder == 0 {
		return text
	}
	return text + " " + convertNumberToWords(remainder)
}

var ones = []string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tens = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}

// FormatINR formats an amount with the rupee sign and Indian digit grouping,
// e.g. 1234567.5 -> "₹12,34,567.50"
func FormatINR(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s₹%s.%s", sign, grouped, frac)
}
