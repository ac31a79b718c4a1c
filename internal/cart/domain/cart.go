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

// LineItem is a product reference paired with a quantity. Name and UnitPrice
// are the values seen on first add; repeat adds never refresh them.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice Money
	Quantity  int32
}

// LineTotal is UnitPrice × Quantity.
func (li LineItem) LineTotal() Money {
	return Money{Currency: li.UnitPrice.Currency, Amount: li.UnitPrice.Amount * int64(li.Quantity)}
}

// Cart is the insertion-ordered set of line items for the running session.
// At most one LineItem exists per ProductID and quantities are always > 0.
type Cart struct {
	Items []LineItem
}

// Total sums price × quantity over all items.
func (c Cart) Total() Money {
	var total Money
	for _, it := range c.Items {
		total.Currency = it.UnitPrice.Currency
		total.Amount += it.UnitPrice.Amount * int64(it.Quantity)
	}
	return total
}

// ItemCount sums the quantities over all items.
func (c Cart) ItemCount() int64 {
	var n int64
	for _, it := range c.Items {
		n += int64(it.Quantity)
	}
	return n
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}
