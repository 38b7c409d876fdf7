package router

import (
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/whatisvlade/zefirbot/internal/menu"
	tg "github.com/whatisvlade/zefirbot/internal/telegram"
	"github.com/whatisvlade/zefirbot/internal/telegram/middleware"
)

// ActionHandler processes one parsed menu action.
type ActionHandler func(c tele.Context, a menu.Action) error

// CallbackRoute returns the single callback route. The raw callback payload
// is parsed into an action once; handlers never see unparsed ids. Unknown
// payloads are acknowledged and dropped so stale keyboards cannot wedge a chat.
func CallbackRoute(handle ActionHandler) tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		cb := c.Callback()
		if cb == nil {
			return nil
		}

		actionID := middleware.CallbackActionID(cb)
		action := menu.ParseAction(actionID)

		name := "callback." + normalizeHandlerName(actionID)
		extras := []slog.Attr{slog.String("action_id", actionID)}

		_ = c.Respond()

		if action.Kind == menu.KindUnknown {
			extras = append(extras, slog.String("reason", "unknown_action"))
			return handleWithSummary(c, name, start, func() error {
				return nil
			}, extras...)
		}

		return handleWithSummary(c, name, start, func() error {
			return handle(c, action)
		}, extras...)
	}
	return tg.Route{
		Endpoint: tele.OnCallback,
		Handler:  handler,
	}
}
