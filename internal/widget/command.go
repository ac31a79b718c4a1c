package widget

// CommandKind names the finite set of actions the widget understands. The
// display layer never calls business services directly; it dispatches one of
// these through the controller's handler table.
type CommandKind string

const (
	CmdAddItem      CommandKind = "add_item"
	CmdSearch       CommandKind = "search"
	CmdGenerateBill CommandKind = "generate_bill"
	CmdLogin        CommandKind = "login"
	CmdLogout       CommandKind = "logout"
	CmdCloseOverlay CommandKind = "close_overlay"
)

// Command is a single dispatched action. Only the fields relevant to its Kind
// are read.
type Command struct {
	Kind CommandKind

	// CmdAddItem
	ProductID string
	Quantity  int32

	// CmdSearch
	Query string

	// CmdGenerateBill
	CustomerName string

	// CmdLogin
	Username string
	Password string
}

// Overlay identifies the modal surface currently shown, if any. Overlays are
// pure visibility toggles; there is no stacking.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayLogin
	OverlayBill
)

// NoticeKind distinguishes the four blocking notices the widget can raise.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeEmptyCartBill
	NoticeLoginSuccess
	NoticeLoginFailure
	NoticeLogoutConfirmed
)

type Notice struct {
	Kind NoticeKind
	Text string
}
