package service

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sip-planner/domain"
)

var printer = message.NewPrinter(language.English)

// roundTo2Decimals rounds half away from zero on the shortest decimal form of value.
func roundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// FormatCurrency renders value as symbol followed by a grouped amount with two decimals.
func FormatCurrency(symbol string, value float64) string {
	return symbol + printer.Sprintf("%.2f", roundTo2Decimals(value))
}

// SummaryLines returns the three display lines of a calculation.
func SummaryLines(symbol string, s domain.Summary) []string {
	return []string{
		"Final portfolio value: " + FormatCurrency(symbol, s.FinalValue),
		"Total amount invested: " + FormatCurrency(symbol, s.TotalInvested),
		"Final monthly SIP amount: " + FormatCurrency(symbol, s.FinalContribution),
	}
}
