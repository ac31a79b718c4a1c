package tui

import (
	"strconv"
	"strings"

	"github.com/adimulya/cartwidget/internal/widget"

	"github.com/charmbracelet/lipgloss"
)

// renderCartPane draws the cart summary: one row per line item (or the empty
// placeholder), the count badge and the running total.
func renderCartPane(view widget.CartView, styles Styles) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Cart"))
	sb.WriteString(" ")
	sb.WriteString(styles.Badge.Render(strconv.FormatInt(view.CountBadge, 10)))
	sb.WriteString("\n\n")

	if view.Empty {
		sb.WriteString(styles.Muted.Render(view.Placeholder))
		sb.WriteString("\n")
	} else {
		nameWidth := 0
		for _, row := range view.Rows {
			if w := lipgloss.Width(row.Name); w > nameWidth {
				nameWidth = w
			}
		}
		for _, row := range view.Rows {
			sb.WriteString(styles.Body.Width(nameWidth + 2).Render(row.Name))
			sb.WriteString(styles.Muted.Render(row.Breakdown))
			sb.WriteString("  ")
			sb.WriteString(styles.Body.Render(row.LineTotal))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Header.Render("Total: "))
	sb.WriteString(styles.Total.Render(view.TotalLabel))
	return sb.String()
}

// renderStatement draws the bill overlay content: header, one row per line,
// grand total.
func renderStatement(st widget.StatementView, styles Styles) string {
	headers := []string{"Item", "Qty", "Unit Price", "Amount"}
	rows := make([][]string, 0, len(st.Rows))
	for _, r := range st.Rows {
		rows = append(rows, []string{r.Name, r.Quantity, r.UnitPrice, r.LineTotal})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	cell := styles.Body.Padding(0, 1)
	head := styles.Header.Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Bill / Invoice"))
	sb.WriteString("\n\n")
	sb.WriteString(styles.Header.Render("Customer: "))
	sb.WriteString(styles.Body.Render(st.CustomerName))
	sb.WriteString("\n")
	sb.WriteString(styles.Header.Render("Date:     "))
	sb.WriteString(styles.Body.Render(st.IssuedAt))
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render("Ref: " + st.ID))
	sb.WriteString("\n\n")

	total := 0
	for _, w := range widths {
		total += w + 2
	}

	for i, h := range headers {
		sb.WriteString(head.Width(widths[i] + 2).Render(h))
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")
	for _, row := range rows {
		for i, c := range row {
			sb.WriteString(cell.Width(widths[i] + 2).Render(c))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")
	sb.WriteString(styles.Header.Render("Grand Total: "))
	sb.WriteString(styles.Total.Render(st.TotalLabel))
	return sb.String()
}
