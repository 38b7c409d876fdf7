package bot

import (
	"testing"

	"github.com/whatisvlade/zefirbot/internal/menu"
)

func TestMarkupForMixedButtons(t *testing.T) {
	s := menu.Screen{
		Buttons: []menu.Button{
			{Label: "🔗 Подробнее / Программа тура", URL: "https://example.com/georgia"},
			{Label: "Оставить заявку", ActionID: "request_georgia"},
			{Label: "🔙 Назад", ActionID: "bus_tours"},
		},
	}

	markup := markupFor(s)
	if markup == nil {
		t.Fatal("expected markup")
	}
	rows := markup.InlineKeyboard
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want one button per row", len(rows))
	}

	link := rows[0][0]
	if link.URL != "https://example.com/georgia" || link.Data != "" {
		t.Fatalf("link button = %+v", link)
	}

	req := rows[1][0]
	if req.Data != "request_georgia" || req.URL != "" {
		t.Fatalf("request button = %+v", req)
	}
	if req.Unique != "" {
		t.Fatalf("callback data must stay raw, got unique %q", req.Unique)
	}

	back := rows[2][0]
	if back.Data != "bus_tours" {
		t.Fatalf("back button = %+v", back)
	}
}

func TestMarkupForNoButtons(t *testing.T) {
	if markupFor(menu.Screen{Text: "ok"}) != nil {
		t.Fatal("screens without buttons must not carry a keyboard")
	}
}
