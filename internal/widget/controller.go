// Package widget wires the cart, catalog, billing and session services behind
// a single command dispatcher and exposes the view models the display layer
// renders from.
package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	billingapp "github.com/adimulya/cartwidget/internal/billing/app"
	cartapp "github.com/adimulya/cartwidget/internal/cart/app"
	cartdomain "github.com/adimulya/cartwidget/internal/cart/domain"
	catalogapp "github.com/adimulya/cartwidget/internal/catalog/app"
	"github.com/adimulya/cartwidget/internal/session"
)

// State is the widget's full display state. It is recomputed from the
// underlying services after every dispatched command; handlers never carry
// snapshots across events.
type State struct {
	Query     string
	Cards     []CatalogCard
	Cart      CartView
	Overlay   Overlay
	Statement *StatementView
	Notice    Notice
	LoggedIn  bool
}

type Controller struct {
	log      *slog.Logger
	cart     *cartapp.Service
	catalog  *catalogapp.Service
	billing  *billingapp.Service
	gate     *session.Gate
	currency string

	handlers map[CommandKind]func(context.Context, Command) error
	state    State
}

func NewController(log *slog.Logger, cart *cartapp.Service, catalog *catalogapp.Service, billing *billingapp.Service, gate *session.Gate, currency string) (*Controller, error) {
	c := &Controller{
		log:      log,
		cart:     cart,
		catalog:  catalog,
		billing:  billing,
		gate:     gate,
		currency: currency,
	}
	c.handlers = map[CommandKind]func(context.Context, Command) error{
		CmdAddItem:      c.handleAddItem,
		CmdSearch:       c.handleSearch,
		CmdGenerateBill: c.handleGenerateBill,
		CmdLogin:        c.handleLogin,
		CmdLogout:       c.handleLogout,
		CmdCloseOverlay: c.handleCloseOverlay,
	}

	if err := c.refresh(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// State returns the display state as of the last dispatched command.
func (c *Controller) State() State {
	return c.state
}

// ShowLoginPrompt opens the login overlay. Opening the prompt is a pure
// visibility toggle; the session stays LoggedOut until credentials pass.
func (c *Controller) ShowLoginPrompt() {
	c.state.Overlay = OverlayLogin
}

// Dispatch routes the command through the handler table and recomputes the
// view models afterwards.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) error {
	handler, ok := c.handlers[cmd.Kind]
	if !ok {
		return fmt.Errorf("unknown command %q", cmd.Kind)
	}

	if err := handler(ctx, cmd); err != nil {
		return err
	}
	return c.refresh(ctx)
}

func (c *Controller) handleAddItem(ctx context.Context, cmd Command) error {
	product, err := c.catalog.Product(ctx, cmd.ProductID)
	if err != nil {
		return fmt.Errorf("add item %q: %w", cmd.ProductID, err)
	}

	// Quantity <= 0 is swallowed by the cart service: no notice, no change.
	if err := c.cart.AddItem(ctx, cartdomain.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: cartdomain.Money{Currency: product.Price.Currency, Amount: product.Price.Amount},
		Quantity:  cmd.Quantity,
	}); err != nil {
		return err
	}

	c.log.Debug("item added",
		slog.String("product_id", product.ID),
		slog.Int("quantity", int(cmd.Quantity)),
	)
	return nil
}

func (c *Controller) handleSearch(ctx context.Context, cmd Command) error {
	c.state.Query = cmd.Query
	return nil
}

func (c *Controller) handleGenerateBill(ctx context.Context, cmd Command) error {
	st, err := c.billing.Generate(ctx, cmd.CustomerName)
	if err != nil {
		if errors.Is(err, billingapp.ErrEmptyCart) {
			c.state.Notice = Notice{
				Kind: NoticeEmptyCartBill,
				Text: "Your cart is empty. Add items before generating a bill.",
			}
			return nil
		}
		return err
	}

	view := BuildStatementView(st)
	c.state.Statement = &view
	c.state.Overlay = OverlayBill
	c.log.Info("bill generated",
		slog.String("statement_id", st.ID),
		slog.Int("lines", len(st.Lines)),
		slog.Int64("total", st.Total.Amount),
	)
	return nil
}

func (c *Controller) handleLogin(ctx context.Context, cmd Command) error {
	if err := c.gate.Login(cmd.Username, cmd.Password); err != nil {
		if errors.Is(err, session.ErrBadCredentials) {
			c.state.Notice = Notice{
				Kind: NoticeLoginFailure,
				Text: "Invalid username or password.",
			}
			return nil
		}
		return err
	}

	c.state.Overlay = OverlayNone
	c.state.Notice = Notice{
		Kind: NoticeLoginSuccess,
		Text: "Admin login successful.",
	}
	c.log.Info("admin logged in")
	return nil
}

func (c *Controller) handleLogout(ctx context.Context, cmd Command) error {
	c.gate.Logout()
	c.state.Notice = Notice{
		Kind: NoticeLogoutConfirmed,
		Text: "You have been logged out.",
	}
	c.log.Info("admin logged out")
	return nil
}

// handleCloseOverlay dismisses a pending notice first; with no notice pending
// it hides the active overlay. A dismissed bill overlay drops its statement.
func (c *Controller) handleCloseOverlay(ctx context.Context, cmd Command) error {
	if c.state.Notice.Kind != NoticeNone {
		c.state.Notice = Notice{}
		return nil
	}

	if c.state.Overlay == OverlayBill {
		c.state.Statement = nil
	}
	c.state.Overlay = OverlayNone
	return nil
}

// refresh recomputes every derived view from current service state.
func (c *Controller) refresh(ctx context.Context) error {
	cart, err := c.cart.Snapshot(ctx)
	if err != nil {
		return err
	}
	cards, err := c.catalog.Visibility(ctx, c.state.Query)
	if err != nil {
		return err
	}

	c.state.Cart = BuildCartView(cart, c.currency)
	c.state.Cards = BuildCatalogCards(cards)
	c.state.LoggedIn = c.gate.LoggedIn()
	return nil
}
