package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.English)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatUSD renders amount as "$14,392.80". Rounding happens here only.
func FormatUSD(amount float64) string {
	if amount < 0 {
		return "-$" + usdPrinter.Sprintf("%.2f", -amount)
	}
	return "$" + usdPrinter.Sprintf("%.2f", amount)
}
