package app

import (
	"context"

	"github.com/adimulya/cartwidget/internal/cart/domain"
)

type CartRepo interface {
	// Snapshot returns the cart with items in insertion order.
	Snapshot(ctx context.Context) (domain.Cart, error)
	// Upsert appends the item, or increments the quantity of an existing
	// item with the same ProductID leaving its first-seen name and unit
	// price untouched.
	Upsert(ctx context.Context, item domain.LineItem) error
}
