// Package request implements the lead-request pipeline: an operator-visible
// trigger notice with delayed retraction and a business-hours-aware
// confirmation.
package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/whatisvlade/zefirbot/internal/logger"
)

// Notifier is the messaging gateway capability the pipeline consumes.
type Notifier interface {
	// SendNotice posts the lead notice into the chat and returns the
	// message id needed for later retraction.
	SendNotice(ctx context.Context, chatID int64, text string) (int, error)
	// DeleteNotice removes a previously sent notice. Failing when the
	// message is already gone is expected and tolerated.
	DeleteNotice(chatID int64, messageID int) error
}

// StaffPolicy reports whether a human operator is assumed available.
type StaffPolicy interface {
	Staffed() bool
}

// Lead is one submitted request, as recorded by the journal.
type Lead struct {
	ChatID      int64
	Category    string
	DisplayName string
	Username    string
	Staffed     bool
	CreatedAt   time.Time
}

// Journal persists submitted leads. Journal failures never fail a submission.
type Journal interface {
	Record(ctx context.Context, lead Lead) error
}

// Requester identifies the user submitting a request.
type Requester struct {
	DisplayName string
	Username    string
}

// Category describes what the request is for. Avia requests use a slightly
// different notice wording and confirmation template.
type Category struct {
	Label string
	Avia  bool
}

// Pipeline executes the submit flow. Submission is successful once the
// notice is sent; retraction is best-effort cosmetic cleanup.
type Pipeline struct {
	trigger   string
	notifier  Notifier
	retractor *Retractor
	policy    StaffPolicy
	journal   Journal
	now       func() time.Time
}

// New builds a pipeline. journal may be nil when no lead store is configured.
func New(trigger string, notifier Notifier, retractor *Retractor, policy StaffPolicy, journal Journal) *Pipeline {
	return &Pipeline{
		trigger:   trigger,
		notifier:  notifier,
		retractor: retractor,
		policy:    policy,
		journal:   journal,
		now:       time.Now,
	}
}

// Confirmation templates; wording differs between tour and avia requests and
// between staffed and after-hours submissions.
const (
	confirmTourStaffed   = "Заявка отправлена!\nОжидайте, с вами свяжется менеджер."
	confirmTourAfter     = "Заявка отправлена!\nВ рабочее время с вами свяжется менеджер."
	confirmAviaStaffed   = "Заявка на подбор тура отправлена!\nОжидайте, с вами свяжется менеджер."
	confirmAviaAfter     = "Заявка на подбор тура отправлена!\nВ рабочее время с вами свяжется менеджер."
)

// NoticeText composes the machine-parseable lead notice. Operators and
// chat-side forwarding watch for the trigger token, so the layout is part of
// the external contract.
func (p *Pipeline) NoticeText(cat Category, req Requester) string {
	if cat.Avia {
		return fmt.Sprintf("%s %s\nИмя: %s @%s", p.trigger, cat.Label, req.DisplayName, req.Username)
	}
	return fmt.Sprintf("%s Тур: %s\nИмя: %s @%s", p.trigger, cat.Label, req.DisplayName, req.Username)
}

// Submit sends the lead notice, schedules its retraction, and returns the
// confirmation text. A failed notice send fails the whole submission: the
// operator never saw the lead, so confirming it would be a lie.
func (p *Pipeline) Submit(ctx context.Context, chatID int64, cat Category, req Requester) (string, error) {
	notice := p.NoticeText(cat, req)

	messageID, err := p.notifier.SendNotice(ctx, chatID, notice)
	if err != nil {
		logger.Error(ctx, "request", "notice.send.fail",
			slog.String("category", cat.Label),
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("send lead notice: %w", err)
	}

	staffed := p.policy.Staffed()

	if p.journal != nil {
		lead := Lead{
			ChatID:      chatID,
			Category:    cat.Label,
			DisplayName: req.DisplayName,
			Username:    req.Username,
			Staffed:     staffed,
			CreatedAt:   p.now(),
		}
		if err := p.journal.Record(ctx, lead); err != nil {
			logger.Warn(ctx, "request", "journal.record.fail",
				slog.String("category", cat.Label),
				slog.Int64("chat_id", chatID),
				slog.String("err", err.Error()),
			)
		}
	}

	p.retractor.Schedule(chatID, messageID)

	logger.Info(ctx, "request", "submitted",
		slog.String("category", cat.Label),
		slog.Int64("chat_id", chatID),
		slog.Int("notice_id", messageID),
		slog.Bool("staffed", staffed),
	)

	switch {
	case cat.Avia && staffed:
		return confirmAviaStaffed, nil
	case cat.Avia:
		return confirmAviaAfter, nil
	case staffed:
		return confirmTourStaffed, nil
	default:
		return confirmTourAfter, nil
	}
}
