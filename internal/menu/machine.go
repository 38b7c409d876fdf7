// Package menu computes the bot's screens. Transition is a pure, total
// function over the action namespace: no screen transition depends on any
// screen visited before the immediately preceding one, so there is no stored
// per-user state to manage.
package menu

import (
	"fmt"

	"github.com/whatisvlade/zefirbot/internal/catalog"
	"github.com/whatisvlade/zefirbot/internal/telegram/format"
)

// AviaCategoryLabel is the fixed category label for avia lead requests.
const AviaCategoryLabel = "Авиа тур"

// Contacts carries the agency-wide contact strings shown on screens.
type Contacts struct {
	Default  string
	Address  string
	Schedule string
}

// Machine maps decoded actions to screens over an immutable catalog.
type Machine struct {
	catalog  *catalog.Catalog
	managers *catalog.Directory
	contacts Contacts
	aviaURL  string
}

// New builds a state machine over read-only catalog data.
func New(cat *catalog.Catalog, managers *catalog.Directory, contacts Contacts, aviaURL string) *Machine {
	return &Machine{
		catalog:  cat,
		managers: managers,
		contacts: contacts,
		aviaURL:  aviaURL,
	}
}

// Transition computes the next screen for a decoded action. Request actions
// and unknown actions yield no screen (ok == false): requests go through the
// lead pipeline first and render via RequestConfirmed, unknown actions are a
// deliberate no-op.
func (m *Machine) Transition(a Action, v Viewer) (Screen, bool) {
	switch a.Kind {
	case KindMainMenu:
		return m.MainMenu(v), true
	case KindBusTours:
		return m.BusTourList(), true
	case KindTourDetail:
		return m.TourDetail(a.TourKey), true
	case KindAviaInfo:
		return m.AviaInfo(), true
	case KindContacts:
		return m.ContactsScreen(), true
	}
	return Screen{}, false
}

// MainMenu greets the viewer and offers the three top-level sections.
func (m *Machine) MainMenu(v Viewer) Screen {
	return Screen{
		Kind: ScreenMainMenu,
		Text: fmt.Sprintf(
			"Привет, %s! 👋\nДобро пожаловать в Zefir Travel!\nВыберите, что вас интересует:",
			format.EscapeHTML(v.FirstName),
		),
		Buttons: []Button{
			{Label: "🚌 Автобусные туры", ActionID: actionBusTours},
			{Label: "✈️ Авиа туры", ActionID: actionAviaTours},
			{Label: "📞 Контакты", ActionID: actionContact},
		},
	}
}

// BusTourList lists every catalog tour in document order.
func (m *Machine) BusTourList() Screen {
	buttons := make([]Button, 0, m.catalog.Len()+1)
	for _, key := range m.catalog.Keys() {
		tour, _ := m.catalog.Get(key)
		buttons = append(buttons, Button{
			Label:    "🌍 " + tour.Name,
			ActionID: tourPrefix + key,
		})
	}
	buttons = append(buttons, backButton(actionBackToMenu))
	return Screen{
		Kind:    ScreenBusTourList,
		Text:    "🚌 Автобусные туры:\nВыберите направление:",
		Buttons: buttons,
	}
}

// TourDetail shows one tour with its resolved manager contact. An absent key
// yields an explicit NotFound screen, never an error.
func (m *Machine) TourDetail(key string) Screen {
	tour, ok := m.catalog.Get(key)
	if !ok {
		return m.notFound()
	}
	contact := tour.ManagerContact
	if contact == "" {
		contact = m.managers.Resolve(key)
	}
	return Screen{
		Kind: ScreenTourDetail,
		Text: fmt.Sprintf("%s\n\n📱 Контакт менеджера: %s", tour.Description, contact),
		Buttons: []Button{
			{Label: "🔗 Подробнее / Программа тура", URL: tour.URL},
			{Label: "Оставить заявку", ActionID: requestPrefix + key},
			backButton(actionBusTours),
		},
	}
}

func (m *Machine) notFound() Screen {
	return Screen{
		Kind:    ScreenNotFound,
		Text:    "Такой тур не найден 😕\nВозможно, программа туров обновилась — выберите направление из списка.",
		Buttons: []Button{backButton(actionBusTours)},
	}
}

// AviaInfo offers self-service search or a managed lead request.
func (m *Machine) AviaInfo() Screen {
	return Screen{
		Kind: ScreenAviaInfo,
		Text: fmt.Sprintf(
			"✈️ Авиа туры:\n\nВыберите действие:\n\n📱 Контакт менеджера: %s",
			m.managers.Resolve("avia"),
		),
		Buttons: []Button{
			{Label: "Самостоятельный подбор тура", URL: m.aviaURL},
			{Label: "Оставить заявку (подбор тура с менеджером)", ActionID: actionAviaRequest},
			backButton(actionBackToMenu),
		},
	}
}

// ContactsScreen shows agency-wide contact details.
func (m *Machine) ContactsScreen() Screen {
	return Screen{
		Kind: ScreenContacts,
		Text: fmt.Sprintf(
			"📞 Контакты:\n📱 Общий номер: %s\n🏢 Адрес: %s\n🕓 Время работы: %s",
			m.contacts.Default, m.contacts.Address, m.contacts.Schedule,
		),
		Buttons: []Button{backButton(actionBackToMenu)},
	}
}

// RequestTarget resolves the category label for a request action. For tour
// requests an unknown key falls back to the key itself, matching how the
// lead notice labeled unknown directions historically.
func (m *Machine) RequestTarget(a Action) (label string, ok bool) {
	switch a.Kind {
	case KindTourRequest:
		if tour, found := m.catalog.Get(a.TourKey); found {
			return tour.Name, true
		}
		return a.TourKey, true
	case KindAviaRequest:
		return AviaCategoryLabel, true
	}
	return "", false
}

// RequestConfirmed wraps the pipeline's confirmation text into a screen. The
// back button returns to the section the request came from.
func (m *Machine) RequestConfirmed(a Action, confirmation string) Screen {
	back := actionBusTours
	if a.Kind == KindAviaRequest {
		back = actionAviaTours
	}
	return Screen{
		Kind:    ScreenRequestConfirmed,
		Text:    confirmation,
		Buttons: []Button{backButton(back)},
	}
}

// RequestFailed is shown when the lead notice could not be delivered; the
// submission is not confirmed in that case.
func (m *Machine) RequestFailed(a Action) Screen {
	back := actionBusTours
	if a.Kind == KindAviaRequest {
		back = actionAviaTours
	}
	return Screen{
		Kind:    ScreenRequestFailed,
		Text:    "Не удалось отправить заявку 😔\nПопробуйте ещё раз чуть позже или позвоните нам: " + m.contacts.Default,
		Buttons: []Button{backButton(back)},
	}
}

func backButton(action string) Button {
	return Button{Label: "🔙 Назад", ActionID: action}
}
