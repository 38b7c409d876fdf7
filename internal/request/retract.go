package request

import (
	"log/slog"
	"time"

	"github.com/whatisvlade/zefirbot/internal/logger"
)

// Deleter removes a previously sent notice.
type Deleter interface {
	DeleteNotice(chatID int64, messageID int) error
}

// Retractor schedules fire-and-forget deletion of lead notices. Each
// scheduled retraction is independent and uncancellable; a shutdown before
// the delay elapses simply drops it. Deletion errors are absorbed: the
// message being gone already is a success from the user's point of view.
type Retractor struct {
	delay   time.Duration
	deleter Deleter

	// after is time.AfterFunc unless a test substitutes it.
	after func(d time.Duration, f func()) *time.Timer
}

// NewRetractor builds a retractor with the configured delay.
func NewRetractor(delay time.Duration, deleter Deleter) *Retractor {
	return &Retractor{
		delay:   delay,
		deleter: deleter,
		after:   time.AfterFunc,
	}
}

// Schedule arms one delayed deletion of the given message.
func (r *Retractor) Schedule(chatID int64, messageID int) {
	r.after(r.delay, func() {
		if err := r.deleter.DeleteNotice(chatID, messageID); err != nil {
			logger.Debug(logger.Background(), "request", "notice.retract.fail",
				slog.Int64("chat_id", chatID),
				slog.Int("notice_id", messageID),
				slog.String("err", err.Error()),
			)
			return
		}
		logger.Debug(logger.Background(), "request", "notice.retracted",
			slog.Int64("chat_id", chatID),
			slog.Int("notice_id", messageID),
		)
	})
}
