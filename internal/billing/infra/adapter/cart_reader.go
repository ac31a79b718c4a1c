package adapter

import (
	"context"

	billingapp "github.com/adimulya/cartwidget/internal/billing/app"
	cartapp "github.com/adimulya/cartwidget/internal/cart/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Snapshot(ctx context.Context) ([]billingapp.CartLine, error) {
	cart, err := r.svc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]billingapp.CartLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, billingapp.CartLine{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Currency:   it.UnitPrice.Currency,
			UnitAmount: it.UnitPrice.Amount,
			Quantity:   it.Quantity,
		})
	}
	return lines, nil
}
