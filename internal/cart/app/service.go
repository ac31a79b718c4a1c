package app

import (
	"context"

	"github.com/adimulya/cartwidget/internal/cart/domain"
)

type Service struct {
	repo CartRepo
}

func NewService(repo CartRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// AddItem merges the item into the cart. A non-positive quantity is silently
// ignored: no error, no mutation. There is intentionally no remove, decrement
// or clear counterpart; the cart empties only when the process restarts.
func (s *Service) AddItem(ctx context.Context, item domain.LineItem) error {
	if item.Quantity <= 0 {
		return nil
	}
	return s.repo.Upsert(ctx, item)
}

func (s *Service) Snapshot(ctx context.Context) (domain.Cart, error) {
	return s.repo.Snapshot(ctx)
}

// Total recomputes the cart total from current state.
func (s *Service) Total(ctx context.Context) (int64, error) {
	cart, err := s.repo.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Total().Amount, nil
}

// ItemCount recomputes the badge count from current state.
func (s *Service) ItemCount(ctx context.Context) (int64, error) {
	cart, err := s.repo.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}
