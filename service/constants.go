package service

const (
	MinYears = 1
	MaxYears = 50 // horizon used by the goal search

	DefaultCurrency = "₹"
	MaxHistoryLimit = 500

	CalculatorNote = "This calculator assumes that returns are compounded monthly and the SIP amount increases annually."
)
