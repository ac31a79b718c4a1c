package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adimulya/cartwidget/internal/catalog/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSeed(t *testing.T) {
	repo, err := NewProductRepo("")
	require.NoError(t, err)

	assert.Equal(t, "₹", repo.Currency())

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	p, err := repo.Get(context.Background(), "fountain-pen")
	require.NoError(t, err)
	assert.Equal(t, "Fountain Pen", p.Name)
	assert.Equal(t, int64(1000), p.Price.Amount)
}

func TestCurrencyOverride(t *testing.T) {
	repo, err := NewProductRepo("$")
	require.NoError(t, err)

	assert.Equal(t, "$", repo.Currency())

	p, err := repo.Get(context.Background(), "story-book")
	require.NoError(t, err)
	assert.Equal(t, "$", p.Price.Currency)
}

func TestGetUnknownID(t *testing.T) {
	repo, err := NewProductRepo("")
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "no-such-product")
	assert.True(t, errors.Is(err, app.ErrNotFound))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `currency: "$"
products:
  - id: widget
    name: Widget
    price: "2.50"
    stock: 3
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	repo, err := NewProductRepoFromFile(path, "")
	require.NoError(t, err)

	p, err := repo.Get(context.Background(), "widget")
	require.NoError(t, err)
	assert.Equal(t, int64(250), p.Price.Amount)
	assert.Equal(t, "$", p.Price.Currency)
	assert.Equal(t, int32(3), p.Stock)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewProductRepoFromFile(filepath.Join(t.TempDir(), "absent.yaml"), "")
	assert.Error(t, err)
}

func TestParseRejectsBadEntries(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		_, err := parse([]byte(`products:
  - {id: a, name: A, price: "1.00"}
  - {id: a, name: B, price: "2.00"}
`), "₹")
		assert.ErrorContains(t, err, "duplicate id")
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := parse([]byte(`products:
  - {id: a, name: A, price: "-1.00"}
`), "₹")
		assert.ErrorContains(t, err, "negative")
	})

	t.Run("unparsable price", func(t *testing.T) {
		_, err := parse([]byte(`products:
  - {id: a, name: A, price: "ten"}
`), "₹")
		assert.ErrorContains(t, err, "bad price")
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := parse([]byte(`products:
  - {id: a, name: "  ", price: "1.00"}
`), "₹")
		assert.ErrorContains(t, err, "required")
	})
}

func TestParsePrice(t *testing.T) {
	for in, want := range map[string]int64{
		"150.00": 15000,
		"5.5":    550,
		"0.05":   5,
		"499":    49900,
	} {
		got, err := parsePrice(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "price %q", in)
	}
}
