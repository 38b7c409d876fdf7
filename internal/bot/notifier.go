package bot

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"

	tele "gopkg.in/telebot.v4"
)

// telegramNotifier sends and retracts lead notices through the live bot.
// The bot instance only exists once the transport is running, so it is bound
// late via Bind.
type telegramNotifier struct {
	bot atomic.Pointer[tele.Bot]
}

func newNotifier() *telegramNotifier {
	return &telegramNotifier{}
}

// Bind attaches the running bot instance.
func (n *telegramNotifier) Bind(b *tele.Bot) {
	n.bot.Store(b)
}

// SendNotice posts the lead notice into the chat and returns its message id.
func (n *telegramNotifier) SendNotice(_ context.Context, chatID int64, text string) (int, error) {
	b := n.bot.Load()
	if b == nil {
		return 0, errors.New("bot is not running")
	}
	msg, err := b.Send(&tele.Chat{ID: chatID}, text)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// DeleteNotice removes a previously posted notice.
func (n *telegramNotifier) DeleteNotice(chatID int64, messageID int) error {
	b := n.bot.Load()
	if b == nil {
		return errors.New("bot is not running")
	}
	return b.Delete(&tele.StoredMessage{
		ChatID:    chatID,
		MessageID: strconv.Itoa(messageID),
	})
}
