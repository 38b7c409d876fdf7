package menu

// ScreenKind identifies what a screen shows, for dispatch and logging.
type ScreenKind string

const (
	ScreenMainMenu         ScreenKind = "main_menu"
	ScreenBusTourList      ScreenKind = "bus_tour_list"
	ScreenTourDetail       ScreenKind = "tour_detail"
	ScreenNotFound         ScreenKind = "not_found"
	ScreenAviaInfo         ScreenKind = "avia_info"
	ScreenContacts         ScreenKind = "contacts"
	ScreenRequestConfirmed ScreenKind = "request_confirmed"
	ScreenRequestFailed    ScreenKind = "request_failed"
)

// Button is one inline action under a screen. Exactly one of ActionID or URL
// is set: URL buttons open an external link, action buttons emit a callback.
type Button struct {
	Label    string
	ActionID string
	URL      string
}

// IsLink reports whether the button opens an external link.
func (b Button) IsLink() bool {
	return b.URL != ""
}

// Screen is rendered content plus its ordered action set. Screens are
// derived values, never stored: each inbound action carries enough
// information to compute the next screen on its own.
type Screen struct {
	Kind    ScreenKind
	Text    string
	Buttons []Button
}

// Viewer carries the requesting user's identity for personalized screens.
type Viewer struct {
	FirstName string
	Username  string
}
