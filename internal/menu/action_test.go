package menu

import "testing"

func TestParseAction(t *testing.T) {
	cases := []struct {
		raw  string
		want Action
	}{
		{"back_to_menu", Action{Kind: KindMainMenu}},
		{"bus_tours", Action{Kind: KindBusTours}},
		{"avia_tours", Action{Kind: KindAviaInfo}},
		{"contact", Action{Kind: KindContacts}},
		{"avia_request", Action{Kind: KindAviaRequest}},
		{"tour_georgia", Action{Kind: KindTourDetail, TourKey: "georgia"}},
		{"tour_", Action{Kind: KindTourDetail, TourKey: ""}},
		{"request_georgia", Action{Kind: KindTourRequest, TourKey: "georgia"}},
		{"", Action{Kind: KindUnknown}},
		{"garbage", Action{Kind: KindUnknown}},
		{"tourgeorgia", Action{Kind: KindUnknown}},
		{"TOUR_georgia", Action{Kind: KindUnknown}},
	}
	for _, tc := range cases {
		if got := ParseAction(tc.raw); got != tc.want {
			t.Fatalf("ParseAction(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	for _, raw := range []string{
		"back_to_menu", "bus_tours", "avia_tours", "contact",
		"avia_request", "tour_georgia", "request_piter",
	} {
		if got := ParseAction(raw).String(); got != raw {
			t.Fatalf("round trip %q -> %q", raw, got)
		}
	}
}

func TestIsRequest(t *testing.T) {
	if !ParseAction("request_georgia").IsRequest() {
		t.Fatal("request_georgia must be a request")
	}
	if !ParseAction("avia_request").IsRequest() {
		t.Fatal("avia_request must be a request")
	}
	if ParseAction("bus_tours").IsRequest() {
		t.Fatal("bus_tours must not be a request")
	}
}
