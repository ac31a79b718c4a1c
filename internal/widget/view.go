package widget

import (
	"fmt"

	billingdomain "github.com/adimulya/cartwidget/internal/billing/domain"
	cartdomain "github.com/adimulya/cartwidget/internal/cart/domain"
	catalogapp "github.com/adimulya/cartwidget/internal/catalog/app"
)

// EmptyCartMessage is the placeholder row shown instead of line items.
const EmptyCartMessage = "Your cart is empty"

const issuedAtLayout = "02 Jan 2006 15:04:05"

// CartRow is one rendered line item: name, "qty × unit price", line total.
type CartRow struct {
	Name      string
	Breakdown string
	LineTotal string
}

// CartView is the cart projected for display. TotalLabel and CountBadge are
// derived from cart state on every build, never stored independently.
type CartView struct {
	Rows        []CartRow
	Empty       bool
	Placeholder string
	TotalLabel  string
	CountBadge  int64
}

// BuildCartView projects cart state into a display model. currency is the
// symbol used for the zero total when the cart is empty.
func BuildCartView(cart cartdomain.Cart, currency string) CartView {
	if cart.Empty() {
		return CartView{
			Empty:       true,
			Placeholder: EmptyCartMessage,
			TotalLabel:  cartdomain.Money{Currency: currency}.Display(),
		}
	}

	rows := make([]CartRow, 0, len(cart.Items))
	for _, it := range cart.Items {
		rows = append(rows, CartRow{
			Name:      it.Name,
			Breakdown: fmt.Sprintf("%d × %s", it.Quantity, it.UnitPrice.Display()),
			LineTotal: it.LineTotal().Display(),
		})
	}

	return CartView{
		Rows:       rows,
		TotalLabel: cart.Total().Display(),
		CountBadge: cart.ItemCount(),
	}
}

// CatalogCard is one catalog entry plus its search visibility.
type CatalogCard struct {
	ID    string
	Name  string
	Price string
	Stock int32
	Shown bool
}

func BuildCatalogCards(cards []catalogapp.CardVisibility) []CatalogCard {
	out := make([]CatalogCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, CatalogCard{
			ID:    c.Product.ID,
			Name:  c.Product.Name,
			Price: c.Product.Price.Display(),
			Stock: c.Product.Stock,
			Shown: c.Shown,
		})
	}
	return out
}

type StatementRow struct {
	Name      string
	Quantity  string
	UnitPrice string
	LineTotal string
}

// StatementView is a generated bill formatted for the overlay. Nothing keeps
// a reference to it once the overlay is dismissed.
type StatementView struct {
	ID           string
	CustomerName string
	IssuedAt     string
	Rows         []StatementRow
	TotalLabel   string
}

func BuildStatementView(st billingdomain.Statement) StatementView {
	rows := make([]StatementRow, 0, len(st.Lines))
	for _, line := range st.Lines {
		rows = append(rows, StatementRow{
			Name:      line.Name,
			Quantity:  fmt.Sprintf("%d", line.Quantity),
			UnitPrice: line.UnitPrice.Display(),
			LineTotal: line.LineTotal.Display(),
		})
	}

	return StatementView{
		ID:           st.ID,
		CustomerName: st.CustomerName,
		IssuedAt:     st.IssuedAt.Format(issuedAtLayout),
		Rows:         rows,
		TotalLabel:   st.Total.Display(),
	}
}
