package menu

import "strings"

// Kind enumerates every routable user action. Unrecognized callback data maps
// to KindUnknown instead of an error so a malformed button press can never
// break the conversation.
type Kind int

const (
	KindUnknown Kind = iota
	KindMainMenu
	KindBusTours
	KindTourDetail
	KindAviaInfo
	KindContacts
	KindTourRequest
	KindAviaRequest
)

// Action is the decoded form of an inbound action id.
type Action struct {
	Kind    Kind
	TourKey string
}

// Callback data tokens. These are the literal strings carried by inline
// buttons, so renaming them breaks buttons already shown to users.
const (
	actionBackToMenu  = "back_to_menu"
	actionBusTours    = "bus_tours"
	actionAviaTours   = "avia_tours"
	actionContact     = "contact"
	actionAviaRequest = "avia_request"

	tourPrefix    = "tour_"
	requestPrefix = "request_"
)

// ParseAction decodes an action id into a tagged Action. It is total: every
// input yields a value, unknown ids yield KindUnknown.
func ParseAction(raw string) Action {
	switch raw {
	case actionBackToMenu:
		return Action{Kind: KindMainMenu}
	case actionBusTours:
		return Action{Kind: KindBusTours}
	case actionAviaTours:
		return Action{Kind: KindAviaInfo}
	case actionContact:
		return Action{Kind: KindContacts}
	case actionAviaRequest:
		return Action{Kind: KindAviaRequest}
	}
	if key, ok := strings.CutPrefix(raw, tourPrefix); ok {
		return Action{Kind: KindTourDetail, TourKey: key}
	}
	if key, ok := strings.CutPrefix(raw, requestPrefix); ok {
		return Action{Kind: KindTourRequest, TourKey: key}
	}
	return Action{Kind: KindUnknown}
}

// String returns the action id this Action encodes to, primarily for logs.
func (a Action) String() string {
	switch a.Kind {
	case KindMainMenu:
		return actionBackToMenu
	case KindBusTours:
		return actionBusTours
	case KindTourDetail:
		return tourPrefix + a.TourKey
	case KindAviaInfo:
		return actionAviaTours
	case KindContacts:
		return actionContact
	case KindTourRequest:
		return requestPrefix + a.TourKey
	case KindAviaRequest:
		return actionAviaRequest
	}
	return "unknown"
}

// IsRequest reports whether the action submits a lead request.
func (a Action) IsRequest() bool {
	return a.Kind == KindTourRequest || a.Kind == KindAviaRequest
}
