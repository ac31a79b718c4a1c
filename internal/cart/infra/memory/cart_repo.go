// Package memory holds the in-process cart storage. The widget owns exactly
// one cart per running session and nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/adimulya/cartwidget/internal/cart/domain"
)

type CartRepo struct {
	mu    sync.Mutex
	items []domain.LineItem
	index map[string]int
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		index: make(map[string]int),
	}
}

func (r *CartRepo) Snapshot(ctx context.Context) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]domain.LineItem, len(r.items))
	copy(items, r.items)
	return domain.Cart{Items: items}, nil
}

// Upsert increments quantity for a known product and appends otherwise.
// Name and unit price keep their first-seen values on repeat adds.
func (r *CartRepo) Upsert(ctx context.Context, item domain.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.index[item.ProductID]; ok {
		r.items[idx].Quantity += item.Quantity
		return nil
	}

	r.index[item.ProductID] = len(r.items)
	r.items = append(r.items, item)
	return nil
}
