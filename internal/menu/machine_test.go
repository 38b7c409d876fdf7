package menu

import (
	"reflect"
	"strings"
	"testing"

	"github.com/whatisvlade/zefirbot/internal/catalog"
)

const testDoc = `
managers:
  default: "+375290000000"
  georgia: "+375291234567"
  avia: "+375298888888"
tours:
  georgia:
    name: Грузия
    description: "Грузия — прекрасная страна с горами, морем и вином."
    url: https://example.com/georgia
  abkhazia:
    name: Абхазия
    description: "<b>Абхазия: два варианта!</b>"
    url: https://example.com/abkhazia
  piter:
    name: Питер
    description: "<b>Тур в Санкт-Петербург</b>"
    url: https://example.com/piter
    manager_contact: "+375295678901"
`

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	cat, dir, err := catalog.Parse([]byte(testDoc), "")
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	contacts := Contacts{
		Default:  "+375290000000",
		Address:  "г. Минск, ул. Примерная, 1",
		Schedule: "пн-пт 10:00–19:00, сб 11:00–16:00, вс — по договорённости",
	}
	return New(cat, dir, contacts, "https://tours.example.com")
}

func actionIDs(s Screen) []string {
	ids := make([]string, 0, len(s.Buttons))
	for _, b := range s.Buttons {
		if !b.IsLink() {
			ids = append(ids, b.ActionID)
		}
	}
	return ids
}

func TestMainMenuHasThreeActionsInOrder(t *testing.T) {
	m := newTestMachine(t)
	screen := m.MainMenu(Viewer{FirstName: "Ann"})
	if screen.Kind != ScreenMainMenu {
		t.Fatalf("kind = %s", screen.Kind)
	}
	want := []string{"bus_tours", "avia_tours", "contact"}
	if got := actionIDs(screen); !reflect.DeepEqual(got, want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	if !strings.Contains(screen.Text, "Привет, Ann!") {
		t.Fatalf("greeting missing viewer name: %q", screen.Text)
	}
}

func TestMainMenuEscapesViewerName(t *testing.T) {
	m := newTestMachine(t)
	screen := m.MainMenu(Viewer{FirstName: "<Ann & Co>"})
	if strings.Contains(screen.Text, "<Ann") {
		t.Fatalf("viewer name not escaped: %q", screen.Text)
	}
	if !strings.Contains(screen.Text, "&lt;Ann &amp; Co&gt;") {
		t.Fatalf("escaped name missing: %q", screen.Text)
	}
}

func TestBusTourListFollowsCatalogOrder(t *testing.T) {
	m := newTestMachine(t)
	screen := m.BusTourList()
	want := []string{"tour_georgia", "tour_abkhazia", "tour_piter", "back_to_menu"}
	if got := actionIDs(screen); !reflect.DeepEqual(got, want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	if screen.Buttons[0].Label != "🌍 Грузия" {
		t.Fatalf("label = %q", screen.Buttons[0].Label)
	}
}

func TestTourDetailForEveryCatalogKey(t *testing.T) {
	cat, dir, err := catalog.Parse([]byte(testDoc), "")
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	m := newTestMachine(t)
	for _, key := range cat.Keys() {
		screen, ok := m.Transition(ParseAction("tour_"+key), Viewer{})
		if !ok || screen.Kind != ScreenTourDetail {
			t.Fatalf("tour_%s: kind = %s, ok = %v", key, screen.Kind, ok)
		}
		tour, _ := cat.Get(key)
		if !strings.Contains(screen.Text, tour.Description) {
			t.Fatalf("tour_%s: description missing", key)
		}
		contact := tour.ManagerContact
		if contact == "" {
			contact = dir.Resolve(key)
		}
		if !strings.Contains(screen.Text, contact) {
			t.Fatalf("tour_%s: contact %q missing in %q", key, contact, screen.Text)
		}
	}
}

func TestTourDetailManagerOverrideWins(t *testing.T) {
	m := newTestMachine(t)
	screen := m.TourDetail("piter")
	if !strings.Contains(screen.Text, "+375295678901") {
		t.Fatalf("override contact missing: %q", screen.Text)
	}
}

func TestTourDetailUnknownKeyYieldsNotFound(t *testing.T) {
	m := newTestMachine(t)
	for _, key := range []string{"unknown_key", "", "GEORGIA"} {
		screen, ok := m.Transition(ParseAction("tour_"+key), Viewer{})
		if !ok {
			t.Fatalf("tour_%s: transition must yield a screen", key)
		}
		if screen.Kind != ScreenNotFound {
			t.Fatalf("tour_%s: kind = %s, want not_found", key, screen.Kind)
		}
	}
}

func TestBackToMenuIsIdempotent(t *testing.T) {
	m := newTestMachine(t)
	v := Viewer{FirstName: "Ann"}
	once, _ := m.Transition(ParseAction("back_to_menu"), v)
	twice, _ := m.Transition(ParseAction("back_to_menu"), v)
	if !reflect.DeepEqual(once, twice) {
		t.Fatal("back_to_menu must be idempotent")
	}
}

func TestUnknownActionYieldsNoScreen(t *testing.T) {
	m := newTestMachine(t)
	if _, ok := m.Transition(ParseAction("garbage"), Viewer{}); ok {
		t.Fatal("unknown action must not yield a screen")
	}
}

func TestRequestActionsYieldNoDirectScreen(t *testing.T) {
	m := newTestMachine(t)
	for _, raw := range []string{"request_georgia", "avia_request"} {
		if _, ok := m.Transition(ParseAction(raw), Viewer{}); ok {
			t.Fatalf("%s: request actions render via the pipeline, not Transition", raw)
		}
	}
}

func TestRequestTarget(t *testing.T) {
	m := newTestMachine(t)
	label, ok := m.RequestTarget(ParseAction("request_georgia"))
	if !ok || label != "Грузия" {
		t.Fatalf("label = %q, ok = %v", label, ok)
	}
	label, ok = m.RequestTarget(ParseAction("avia_request"))
	if !ok || label != AviaCategoryLabel {
		t.Fatalf("avia label = %q, ok = %v", label, ok)
	}
	// unknown direction keeps the raw key as label
	label, ok = m.RequestTarget(ParseAction("request_atlantis"))
	if !ok || label != "atlantis" {
		t.Fatalf("fallback label = %q, ok = %v", label, ok)
	}
	if _, ok := m.RequestTarget(ParseAction("bus_tours")); ok {
		t.Fatal("non-request action must not resolve a target")
	}
}

func TestRequestConfirmedBackButton(t *testing.T) {
	m := newTestMachine(t)
	tourScreen := m.RequestConfirmed(ParseAction("request_georgia"), "ok")
	if got := actionIDs(tourScreen); !reflect.DeepEqual(got, []string{"bus_tours"}) {
		t.Fatalf("tour back = %v", got)
	}
	aviaScreen := m.RequestConfirmed(ParseAction("avia_request"), "ok")
	if got := actionIDs(aviaScreen); !reflect.DeepEqual(got, []string{"avia_tours"}) {
		t.Fatalf("avia back = %v", got)
	}
	if tourScreen.Text != "ok" {
		t.Fatalf("confirmation text = %q", tourScreen.Text)
	}
}

func TestAviaInfoAndContacts(t *testing.T) {
	m := newTestMachine(t)
	avia := m.AviaInfo()
	if !strings.Contains(avia.Text, "+375298888888") {
		t.Fatalf("avia manager contact missing: %q", avia.Text)
	}
	if !avia.Buttons[0].IsLink() || avia.Buttons[0].URL != "https://tours.example.com" {
		t.Fatalf("avia link button = %+v", avia.Buttons[0])
	}
	contacts := m.ContactsScreen()
	if !strings.Contains(contacts.Text, "+375290000000") || !strings.Contains(contacts.Text, "Минск") {
		t.Fatalf("contacts text = %q", contacts.Text)
	}
}
