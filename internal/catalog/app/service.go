package app

import (
	"context"
	"errors"
	"strings"

	"github.com/adimulya/cartwidget/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Product(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// CardVisibility is one catalog card's shown/hidden state for a query.
type CardVisibility struct {
	Product domain.Product
	Shown   bool
}

// Visibility applies the search filter: case-insensitive substring match of
// the query against each product name, one entry per product in catalog
// order. An empty query shows everything. Catalog state is never mutated.
func (s *Service) Visibility(ctx context.Context, query string) ([]CardVisibility, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	cards := make([]CardVisibility, 0, len(products))
	for _, p := range products {
		cards = append(cards, CardVisibility{
			Product: p,
			Shown:   q == "" || strings.Contains(strings.ToLower(p.Name), q),
		})
	}
	return cards, nil
}
