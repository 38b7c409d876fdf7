package bot

import (
	"fmt"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/whatisvlade/zefirbot/internal/logger"
	"github.com/whatisvlade/zefirbot/internal/menu"
	"github.com/whatisvlade/zefirbot/internal/request"
	"github.com/whatisvlade/zefirbot/internal/telegram/format"
	tghelpers "github.com/whatisvlade/zefirbot/internal/telegram/helpers"
)

func viewerFrom(c tele.Context) menu.Viewer {
	user := c.Sender()
	if user == nil {
		return menu.Viewer{}
	}
	return menu.Viewer{
		FirstName: user.FirstName,
		Username:  user.Username,
	}
}

// handleStart greets the user with the main menu.
func (a *App) handleStart(c tele.Context) error {
	return renderNew(c, a.machine.MainMenu(viewerFrom(c)))
}

// handleAction dispatches one parsed callback action. Navigation actions go
// through the menu machine; request actions run the submit pipeline first and
// render its outcome.
func (a *App) handleAction(c tele.Context, action menu.Action) error {
	if action.IsRequest() {
		return a.handleRequest(c, action)
	}
	screen, ok := a.machine.Transition(action, viewerFrom(c))
	if !ok {
		return nil
	}
	return renderInPlace(c, screen)
}

func (a *App) handleRequest(c tele.Context, action menu.Action) error {
	label, ok := a.machine.RequestTarget(action)
	if !ok {
		return nil
	}

	chat := c.Chat()
	if chat == nil {
		return nil
	}

	ctx := tghelpers.WithHandler(c, "request.submit")
	viewer := viewerFrom(c)
	cat := request.Category{
		Label: label,
		Avia:  action.Kind == menu.KindAviaRequest,
	}
	req := request.Requester{
		DisplayName: viewer.FirstName,
		Username:    viewer.Username,
	}

	confirmation, err := a.pipeline.Submit(ctx, chat.ID, cat, req)
	if err != nil {
		// the operator never saw this lead; tell the user to retry
		return renderInPlace(c, a.machine.RequestFailed(action))
	}
	return renderInPlace(c, a.machine.RequestConfirmed(action, confirmation))
}

// handleLeads lists the latest journal entries. Admin-only.
func (a *App) handleLeads(c tele.Context) error {
	ctx := tghelpers.WithHandler(c, "leads.recent")

	if a.store == nil {
		return tghelpers.SendText(c, "Журнал заявок не настроен.")
	}

	rows, err := a.store.Recent(ctx, 10)
	if err != nil {
		logger.Error(ctx, "leads", "recent.fail",
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, "Не удалось получить заявки, попробуйте позже.")
	}
	if len(rows) == 0 {
		return tghelpers.SendText(c, "Заявок пока нет.")
	}

	var b strings.Builder
	b.WriteString(format.Bold("Последние заявки:"))
	for _, row := range rows {
		staffed := "в рабочее время"
		if !row.Staffed {
			staffed = "вне рабочего времени"
		}
		fmt.Fprintf(&b, "\n%s — %s @%s (%s, %s)",
			format.EscapeHTML(row.Category),
			format.EscapeHTML(row.DisplayName),
			format.EscapeHTML(row.Username),
			row.CreatedAt.Format("02.01 15:04"),
			staffed,
		)
	}
	return tghelpers.SendHTML(c, b.String())
}
