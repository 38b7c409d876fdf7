package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/whatisvlade/zefirbot/internal/menu"
	tghelpers "github.com/whatisvlade/zefirbot/internal/telegram/helpers"
	"github.com/whatisvlade/zefirbot/internal/telegram/keyboard"
)

func markupFor(s menu.Screen) *tele.ReplyMarkup {
	if len(s.Buttons) == 0 {
		return nil
	}
	buttons := make([]keyboard.InlineBtn, 0, len(s.Buttons))
	for _, b := range s.Buttons {
		if b.IsLink() {
			buttons = append(buttons, keyboard.InlineBtn{Text: b.Label, URL: b.URL})
			continue
		}
		buttons = append(buttons, keyboard.InlineBtn{Text: b.Label, Data: b.ActionID})
	}
	return keyboard.InlineButtons(buttons)
}

// renderNew sends the screen as a fresh message.
func renderNew(c tele.Context, s menu.Screen) error {
	if markup := markupFor(s); markup != nil {
		return tghelpers.SendHTML(c, s.Text, markup)
	}
	return tghelpers.SendHTML(c, s.Text)
}

// renderInPlace replaces the tapped message with the screen, falling back to
// a fresh message when the original is gone.
func renderInPlace(c tele.Context, s menu.Screen) error {
	if markup := markupFor(s); markup != nil {
		return tghelpers.EditOrSendHTML(c, s.Text, markup)
	}
	return tghelpers.EditOrSendHTML(c, s.Text)
}
