package domain

import (
	"fmt"
	"time"
)

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

type StatementLine struct {
	ProductID string
	Name      string
	Quantity  int32
	UnitPrice Money
	LineTotal Money
}

// Statement is a point-in-time bill. It is built from the cart as it stood at
// generation time and is not kept once the caller discards it.
type Statement struct {
	ID           string
	CustomerName string
	IssuedAt     time.Time
	Lines        []StatementLine
	Total        Money
}
