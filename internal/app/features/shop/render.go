package shop

import (
	"fmt"
	"strings"

	"github.com/emperjs/shopfront/internal/app/system/htmlsanitize"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// formatPrice renders a minor-unit amount for display, e.g. "$12.50" or
// "SEK 99.00" when no symbol is known.
func formatPrice(cents int64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	amount := fmt.Sprintf("%.2f", float64(cents)/100)
	if sym, ok := currencySymbols[currency]; ok {
		return sym + amount
	}
	if currency == "" {
		return amount
	}
	return currency + " " + amount
}

func sanitizeText(s string) string {
	return htmlsanitize.PlainText(s)
}
