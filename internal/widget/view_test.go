package widget

import (
	"testing"
	"time"

	billingdomain "github.com/adimulya/cartwidget/internal/billing/domain"
	cartdomain "github.com/adimulya/cartwidget/internal/cart/domain"
	catalogapp "github.com/adimulya/cartwidget/internal/catalog/app"
	catalogdomain "github.com/adimulya/cartwidget/internal/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartMoney(amount int64) cartdomain.Money {
	return cartdomain.Money{Currency: "₹", Amount: amount}
}

func catMoney(amount int64) catalogdomain.Money {
	return catalogdomain.Money{Currency: "₹", Amount: amount}
}

func billMoney(amount int64) billingdomain.Money {
	return billingdomain.Money{Currency: "₹", Amount: amount}
}

func TestBuildCartView_Empty(t *testing.T) {
	view := BuildCartView(cartdomain.Cart{}, "₹")

	assert.True(t, view.Empty)
	assert.Equal(t, EmptyCartMessage, view.Placeholder)
	assert.Empty(t, view.Rows)
	assert.Equal(t, "₹0.00", view.TotalLabel)
	assert.Equal(t, int64(0), view.CountBadge)
}

func TestBuildCartView_Rows(t *testing.T) {
	cart := cartdomain.Cart{Items: []cartdomain.LineItem{
		{ProductID: "p1", Name: "Pen", UnitPrice: cartMoney(1000), Quantity: 2},
		{ProductID: "p2", Name: "Book", UnitPrice: cartMoney(15000), Quantity: 1},
	}}

	view := BuildCartView(cart, "₹")

	require.Len(t, view.Rows, 2)
	assert.False(t, view.Empty)

	assert.Equal(t, "Pen", view.Rows[0].Name)
	assert.Equal(t, "2 × ₹10.00", view.Rows[0].Breakdown)
	assert.Equal(t, "₹20.00", view.Rows[0].LineTotal)

	assert.Equal(t, "Book", view.Rows[1].Name)
	assert.Equal(t, "1 × ₹150.00", view.Rows[1].Breakdown)
	assert.Equal(t, "₹150.00", view.Rows[1].LineTotal)

	assert.Equal(t, "₹170.00", view.TotalLabel)
	assert.Equal(t, int64(3), view.CountBadge)
}

func TestBuildCatalogCards(t *testing.T) {
	cards := BuildCatalogCards([]catalogapp.CardVisibility{
		{Product: catalogdomain.Product{ID: "p1", Name: "Pen", Price: catMoney(1000), Stock: 7}, Shown: true},
		{Product: catalogdomain.Product{ID: "p2", Name: "Book", Price: catMoney(15000), Stock: 2}, Shown: false},
	})

	require.Len(t, cards, 2)
	assert.Equal(t, "₹10.00", cards[0].Price)
	assert.True(t, cards[0].Shown)
	assert.False(t, cards[1].Shown)
}

func TestBuildStatementView(t *testing.T) {
	st := billingdomain.Statement{
		ID:           "abc-123",
		CustomerName: "Asha",
		IssuedAt:     time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC),
		Lines: []billingdomain.StatementLine{
			{Name: "Pen", Quantity: 2, UnitPrice: billMoney(1000), LineTotal: billMoney(2000)},
		},
		Total: billMoney(2000),
	}

	view := BuildStatementView(st)

	assert.Equal(t, "abc-123", view.ID)
	assert.Equal(t, "Asha", view.CustomerName)
	assert.Equal(t, "09 Mar 2024 14:30:05", view.IssuedAt)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "2", view.Rows[0].Quantity)
	assert.Equal(t, "₹10.00", view.Rows[0].UnitPrice)
	assert.Equal(t, "₹20.00", view.Rows[0].LineTotal)
	assert.Equal(t, "₹20.00", view.TotalLabel)
}
