package domain

import "fmt"

// Money is an amount in minor units with a display symbol prefix.
type Money struct {
	Currency string
	Amount   int64
}

// Display renders the amount with exactly two fractional digits,
// symbol first ("₹10.00").
func (m Money) Display() string {
	sign := ""
	amt := m.Amount
	if amt < 0 {
		sign = "-"
		amt = -amt
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, m.Currency, amt/100, amt%100)
}

type Product struct {
	ID    string
	Name  string
	Price Money
	Stock int32
}
