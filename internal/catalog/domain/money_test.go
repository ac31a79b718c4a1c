package domain

import "testing"

func TestMoneyDisplay(t *testing.T) {
	cases := []struct {
		name   string
		amount int64
		want   string
	}{
		{"whole", 1000, "₹10.00"},
		{"fraction", 1550, "₹15.50"},
		{"sub-unit", 5, "₹0.05"},
		{"zero", 0, "₹0.00"},
		{"large", 17000, "₹170.00"},
		{"negative", -250, "-₹2.50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Money{Currency: "₹", Amount: tc.amount}.Display()
			if got != tc.want {
				t.Fatalf("Display() = %q, want %q", got, tc.want)
			}
		})
	}
}
