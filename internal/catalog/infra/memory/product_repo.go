// Package memory serves the static catalog the widget renders. Entries come
// from an embedded seed or a YAML file of the same shape; the repo is
// read-only after construction.
package memory

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/adimulya/cartwidget/internal/catalog/app"
	"github.com/adimulya/cartwidget/internal/catalog/domain"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type catalogFile struct {
	Currency string        `yaml:"currency"`
	Products []productSpec `yaml:"products"`
}

type productSpec struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Stock int32  `yaml:"stock"`
}

type ProductRepo struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
	currency string
}

// NewProductRepo builds the catalog from the embedded seed.
func NewProductRepo(currency string) (*ProductRepo, error) {
	return parse(seedYAML, currency)
}

// NewProductRepoFromFile builds the catalog from a YAML file.
func NewProductRepoFromFile(path, currency string) (*ProductRepo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parse(raw, currency)
}

func parse(raw []byte, currency string) (*ProductRepo, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if currency == "" {
		currency = file.Currency
	}

	r := &ProductRepo{
		index:    make(map[string]int, len(file.Products)),
		currency: currency,
	}
	for i, spec := range file.Products {
		if strings.TrimSpace(spec.ID) == "" || strings.TrimSpace(spec.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d: id and name are required", i)
		}
		if _, dup := r.index[spec.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, spec.ID)
		}
		amount, err := parsePrice(spec.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", spec.ID, err)
		}
		r.index[spec.ID] = len(r.products)
		r.products = append(r.products, domain.Product{
			ID:    spec.ID,
			Name:  spec.Name,
			Price: domain.Money{Currency: currency, Amount: amount},
			Stock: spec.Stock,
		})
	}
	return r, nil
}

// parsePrice converts a decimal string like "150.00" to minor units.
func parsePrice(s string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad price %q: %w", s, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("bad price %q: negative", s)
	}
	return int64(math.Round(f * 100)), nil
}

func (r *ProductRepo) Currency() string {
	return r.currency
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[idx], nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
