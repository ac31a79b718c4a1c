package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adimulya/cartwidget/internal/billing/domain"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// DefaultCustomerName is used when the bill form's name field is left blank.
const DefaultCustomerName = "Walk-in Customer"

type CartReader interface {
	Snapshot(ctx context.Context) ([]CartLine, error)
}

// CartLine carries the cart's first-seen name and unit price; the bill never
// refreshes them from the catalog.
type CartLine struct {
	ProductID  string
	Name       string
	Currency   string
	UnitAmount int64
	Quantity   int32
}

type Service struct {
	cart CartReader

	now func() time.Time
}

func NewService(cart CartReader) *Service {
	return &Service{
		cart: cart,
		now:  time.Now,
	}
}

// Generate snapshots the cart and produces a statement. An empty cart is
// refused with ErrEmptyCart and nothing is produced or mutated.
func (s *Service) Generate(ctx context.Context, customerName string) (domain.Statement, error) {
	items, err := s.cart.Snapshot(ctx)
	if err != nil {
		return domain.Statement{}, err
	}

	if len(items) == 0 {
		return domain.Statement{}, ErrEmptyCart
	}

	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		customerName = DefaultCustomerName
	}

	lines := make([]domain.StatementLine, 0, len(items))
	var total domain.Money

	for i, it := range items {
		if it.Quantity <= 0 {
			return domain.Statement{}, fmt.Errorf("line %d: quantity must be positive, got %d", i, it.Quantity)
		}
		if it.UnitAmount < 0 {
			return domain.Statement{}, fmt.Errorf("line %d: unit price cannot be negative, got %d", i, it.UnitAmount)
		}

		lineTotal := it.UnitAmount * int64(it.Quantity)
		lines = append(lines, domain.StatementLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: domain.Money{Currency: it.Currency, Amount: it.UnitAmount},
			LineTotal: domain.Money{Currency: it.Currency, Amount: lineTotal},
		})

		total.Currency = it.Currency
		total.Amount += lineTotal
	}

	return domain.Statement{
		ID:           uuid.NewString(),
		CustomerName: customerName,
		IssuedAt:     s.now(),
		Lines:        lines,
		Total:        total,
	}, nil
}
