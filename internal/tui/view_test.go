package tui

import (
	"strings"
	"testing"

	"github.com/adimulya/cartwidget/internal/widget"
)

func TestRenderCartPane(t *testing.T) {
	styles := DefaultStyles()

	t.Run("empty", func(t *testing.T) {
		view := widget.CartView{
			Empty:       true,
			Placeholder: widget.EmptyCartMessage,
			TotalLabel:  "₹0.00",
		}
		out := renderCartPane(view, styles)
		t.Logf("pane:\n%s", out)

		if !strings.Contains(out, widget.EmptyCartMessage) {
			t.Error("missing empty placeholder")
		}
		if !strings.Contains(out, "₹0.00") {
			t.Error("missing zero total")
		}
	})

	t.Run("rows", func(t *testing.T) {
		view := widget.CartView{
			Rows: []widget.CartRow{
				{Name: "Pen", Breakdown: "2 × ₹10.00", LineTotal: "₹20.00"},
			},
			TotalLabel: "₹20.00",
			CountBadge: 2,
		}
		out := renderCartPane(view, styles)

		for _, want := range []string{"Pen", "2 × ₹10.00", "₹20.00", "Total"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q", want)
			}
		}
	})
}

func TestRenderStatement(t *testing.T) {
	st := widget.StatementView{
		ID:           "abc-123",
		CustomerName: "Asha",
		IssuedAt:     "09 Mar 2024 14:30:05",
		Rows: []widget.StatementRow{
			{Name: "Pen", Quantity: "2", UnitPrice: "₹10.00", LineTotal: "₹20.00"},
			{Name: "Book", Quantity: "1", UnitPrice: "₹150.00", LineTotal: "₹150.00"},
		},
		TotalLabel: "₹170.00",
	}

	out := renderStatement(st, DefaultStyles())
	t.Logf("statement:\n%s", out)

	for _, want := range []string{"Asha", "09 Mar 2024 14:30:05", "Pen", "Book", "₹170.00", "abc-123"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	cases := map[string]int32{
		"3":          3,
		" 2 ":        2,
		"2.9":        2,
		"0":          0,
		"-1":         0,
		"9e99":       0,
		"2147483648": 0,
		"abc":        0,
		"":           0,
		"1eals":      0,
	}
	for in, want := range cases {
		if got := parseQuantity(in); got != want {
			t.Errorf("parseQuantity(%q) = %d, want %d", in, got, want)
		}
	}
}
