package tui

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/adimulya/cartwidget/internal/widget"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focusArea tracks which input receives keystrokes on the main screen.
type focusArea int

const (
	focusTable focusArea = iota
	focusSearch
	focusQty
	focusCustomer
)

// loginField tracks the focused field inside the login overlay.
type loginField int

const (
	loginUsername loginField = iota
	loginPassword
)

type Model struct {
	ctrl   *widget.Controller
	styles Styles

	catalog  table.Model
	search   textinput.Model
	qty      textinput.Model
	customer textinput.Model
	username textinput.Model
	password textinput.Model

	// visible mirrors the table rows: cursor index -> catalog card.
	visible []widget.CatalogCard

	focus      focusArea
	loginFocus loginField

	width  int
	height int
	err    error
}

func New(ctrl *widget.Controller) Model {
	columns := []table.Column{
		{Title: "Product", Width: 24},
		{Title: "Price", Width: 12},
		{Title: "In Stock", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	search := textinput.New()
	search.Placeholder = "Search products..."
	search.CharLimit = 50
	search.Width = 30

	qty := textinput.New()
	qty.Placeholder = "Qty"
	qty.CharLimit = 6
	qty.Width = 8

	customer := textinput.New()
	customer.Placeholder = "Customer name (optional)"
	customer.CharLimit = 60
	customer.Width = 30

	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 40
	username.Width = 24

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 40
	password.Width = 24
	password.EchoMode = textinput.EchoPassword

	m := Model{
		ctrl:     ctrl,
		styles:   DefaultStyles(),
		catalog:  t,
		search:   search,
		qty:      qty,
		customer: customer,
		username: username,
		password: password,
	}
	m.syncCatalogRows()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// dispatch routes a command through the controller and records any error for
// the status line.
func (m *Model) dispatch(cmd widget.Command) {
	m.err = m.ctrl.Dispatch(context.Background(), cmd)
	m.syncCatalogRows()
}

// syncCatalogRows rebuilds the table from the cards the filter left visible;
// hidden cards are simply not rendered.
func (m *Model) syncCatalogRows() {
	state := m.ctrl.State()
	m.visible = m.visible[:0]
	rows := make([]table.Row, 0, len(state.Cards))
	for _, card := range state.Cards {
		if !card.Shown {
			continue
		}
		m.visible = append(m.visible, card)
		rows = append(rows, table.Row{card.Name, card.Price, strconv.Itoa(int(card.Stock))})
	}
	m.catalog.SetRows(rows)
	if m.catalog.Cursor() >= len(rows) {
		m.catalog.SetCursor(0)
	}
}

func (m *Model) selectedCard() (widget.CatalogCard, bool) {
	idx := m.catalog.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return widget.CatalogCard{}, false
	}
	return m.visible[idx], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		state := m.ctrl.State()

		// A pending notice blocks everything; any key acknowledges it.
		if state.Notice.Kind != widget.NoticeNone {
			m.dispatch(widget.Command{Kind: widget.CmdCloseOverlay})
			return m, nil
		}

		switch state.Overlay {
		case widget.OverlayLogin:
			return m.updateLoginOverlay(msg)
		case widget.OverlayBill:
			return m.updateBillOverlay(msg)
		}

		return m.updateMain(msg)
	}

	return m, nil
}

func (m Model) updateLoginOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearLoginForm()
		m.dispatch(widget.Command{Kind: widget.CmdCloseOverlay})
		return m, nil
	case "tab", "shift+tab":
		if m.loginFocus == loginUsername {
			m.loginFocus = loginPassword
			m.username.Blur()
			return m, m.password.Focus()
		}
		m.loginFocus = loginUsername
		m.password.Blur()
		return m, m.username.Focus()
	case "enter":
		cmd := widget.Command{
			Kind:     widget.CmdLogin,
			Username: m.username.Value(),
			Password: m.password.Value(),
		}
		// Fields are cleared whether the pair matched or not.
		m.clearLoginForm()
		m.dispatch(cmd)
		return m, nil
	}

	var cmd tea.Cmd
	if m.loginFocus == loginUsername {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) clearLoginForm() {
	m.username.SetValue("")
	m.password.SetValue("")
	m.loginFocus = loginUsername
	m.password.Blur()
}

func (m Model) updateBillOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.dispatch(widget.Command{Kind: widget.CmdCloseOverlay})
	}
	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusSearch:
		return m.updateSearch(msg)
	case focusQty:
		return m.updateQty(msg)
	case focusCustomer:
		return m.updateCustomer(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		return m, m.search.Focus()
	case "a", "enter":
		if _, ok := m.selectedCard(); ok {
			m.focus = focusQty
			m.catalog.Blur()
			return m, m.qty.Focus()
		}
		return m, nil
	case "b":
		m.focus = focusCustomer
		m.catalog.Blur()
		return m, m.customer.Focus()
	case "l":
		if m.ctrl.State().LoggedIn {
			m.dispatch(widget.Command{Kind: widget.CmdLogout})
			return m, nil
		}
		m.ctrl.ShowLoginPrompt()
		m.loginFocus = loginUsername
		return m, m.username.Focus()
	}

	var cmd tea.Cmd
	m.catalog, cmd = m.catalog.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.focus = focusTable
		m.search.Blur()
		m.catalog.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// One dispatch per input event, no debounce.
	m.dispatch(widget.Command{Kind: widget.CmdSearch, Query: m.search.Value()})
	return m, cmd
}

func (m Model) updateQty(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.qty.SetValue("")
		m.focus = focusTable
		m.qty.Blur()
		m.catalog.Focus()
		return m, nil
	case "enter":
		card, ok := m.selectedCard()
		raw := m.qty.Value()
		m.qty.SetValue("")
		m.focus = focusTable
		m.qty.Blur()
		m.catalog.Focus()
		if ok {
			// Non-numeric parses to zero and the store ignores it.
			m.dispatch(widget.Command{
				Kind:      widget.CmdAddItem,
				ProductID: card.ID,
				Quantity:  parseQuantity(raw),
			})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.qty, cmd = m.qty.Update(msg)
	return m, cmd
}

func (m Model) updateCustomer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.customer.SetValue("")
		m.focus = focusTable
		m.customer.Blur()
		m.catalog.Focus()
		return m, nil
	case "enter":
		name := m.customer.Value()
		m.customer.SetValue("")
		m.focus = focusTable
		m.customer.Blur()
		m.catalog.Focus()
		m.dispatch(widget.Command{Kind: widget.CmdGenerateBill, CustomerName: name})
		return m, nil
	}

	var cmd tea.Cmd
	m.customer, cmd = m.customer.Update(msg)
	return m, cmd
}

// parseQuantity mirrors the widget's forgiving quantity field: a decimal is
// truncated to a whole number, anything unparsable, non-positive or beyond
// int32 range becomes zero.
func parseQuantity(raw string) int32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f <= 0 || f > math.MaxInt32 {
		return 0
	}
	return int32(f)
}

func (m Model) View() string {
	state := m.ctrl.State()

	if state.Notice.Kind != widget.NoticeNone {
		box := m.styles.Notice.Render(state.Notice.Text + "\n\n" + m.styles.HelpLine.Render("press any key to continue"))
		return m.place(box)
	}

	switch state.Overlay {
	case widget.OverlayLogin:
		return m.place(m.loginOverlayView())
	case widget.OverlayBill:
		if state.Statement != nil {
			content := renderStatement(*state.Statement, m.styles)
			hint := m.styles.HelpLine.Render("esc to close")
			return m.place(m.styles.Overlay.Render(content + "\n\n" + hint))
		}
	}

	return m.mainView(state)
}

func (m Model) loginOverlayView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Admin Login"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Header.Render("Username: "))
	sb.WriteString(m.username.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render("Password: "))
	sb.WriteString(m.password.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.HelpLine.Render("tab: switch · enter: submit · esc: cancel"))
	return m.styles.Overlay.Render(sb.String())
}

func (m Model) mainView(state widget.State) string {
	var left strings.Builder
	left.WriteString(m.styles.Title.Render("Catalog"))
	left.WriteString("  ")
	left.WriteString(m.search.View())
	left.WriteString("\n")
	left.WriteString(m.catalog.View())
	if m.focus == focusQty {
		left.WriteString("\n")
		left.WriteString(m.styles.Header.Render("Quantity: "))
		left.WriteString(m.qty.View())
	}
	if m.focus == focusCustomer {
		left.WriteString("\n")
		left.WriteString(m.styles.Header.Render("Bill for: "))
		left.WriteString(m.customer.View())
	}

	right := renderCartPane(state.Cart, m.styles)

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.Pane.Render(left.String()),
		m.styles.Pane.Render(right),
	)

	status := "logged out"
	if state.LoggedIn {
		status = "admin"
	}
	bar := m.styles.HelpLine.Render(
		"a: add · /: search · b: bill · l: login/logout · q: quit",
	) + "  " + m.styles.Muted.Render("["+status+"]")

	out := panes + "\n" + bar
	if m.err != nil {
		out += "\n" + m.styles.ErrLine.Render(m.err.Error())
	}
	return out
}

func (m Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
