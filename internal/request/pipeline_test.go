package request

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type sentNotice struct {
	chatID int64
	text   string
}

type fakeGateway struct {
	sent      []sentNotice
	sendErr   error
	deleted   []int
	delErr    error
	nextMsgID int
}

func (g *fakeGateway) SendNotice(_ context.Context, chatID int64, text string) (int, error) {
	if g.sendErr != nil {
		return 0, g.sendErr
	}
	g.sent = append(g.sent, sentNotice{chatID: chatID, text: text})
	g.nextMsgID++
	return g.nextMsgID, nil
}

func (g *fakeGateway) DeleteNotice(_ int64, messageID int) error {
	g.deleted = append(g.deleted, messageID)
	return g.delErr
}

type fixedPolicy bool

func (p fixedPolicy) Staffed() bool { return bool(p) }

type fakeJournal struct {
	leads []Lead
	err   error
}

func (j *fakeJournal) Record(_ context.Context, lead Lead) error {
	if j.err != nil {
		return j.err
	}
	j.leads = append(j.leads, lead)
	return nil
}

// manualRetractor captures scheduled retractions without waiting.
func manualRetractor(deleter Deleter, delay time.Duration) (*Retractor, *[]time.Duration, *[]func()) {
	delays := &[]time.Duration{}
	fns := &[]func(){}
	r := NewRetractor(delay, deleter)
	r.after = func(d time.Duration, f func()) *time.Timer {
		*delays = append(*delays, d)
		*fns = append(*fns, f)
		return time.NewTimer(time.Hour)
	}
	return r, delays, fns
}

func TestSubmitSendsExactlyOneNotice(t *testing.T) {
	gw := &fakeGateway{}
	r, delays, _ := manualRetractor(gw, 3*time.Second)
	p := New("#ЗАЯВКА", gw, r, fixedPolicy(true), nil)

	text, err := p.Submit(context.Background(), 77, Category{Label: "Грузия"}, Requester{DisplayName: "Ann", Username: "ann"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(gw.sent) != 1 {
		t.Fatalf("sent %d notices, want 1", len(gw.sent))
	}
	notice := gw.sent[0]
	if notice.chatID != 77 {
		t.Fatalf("chat_id = %d", notice.chatID)
	}
	if !strings.Contains(notice.text, "#ЗАЯВКА") || !strings.Contains(notice.text, "Грузия") {
		t.Fatalf("notice = %q", notice.text)
	}
	if len(*delays) != 1 || (*delays)[0] < 3*time.Second {
		t.Fatalf("retraction delay = %v, want >= 3s", *delays)
	}
	if text != confirmTourStaffed {
		t.Fatalf("confirmation = %q", text)
	}
}

func TestSubmitNoticeTextExact(t *testing.T) {
	gw := &fakeGateway{}
	r, _, _ := manualRetractor(gw, 3*time.Second)
	p := New("#ЗАЯВКА", gw, r, fixedPolicy(false), nil)

	// hour 23 scenario: unstaffed policy, empty username renders a bare @
	text, err := p.Submit(context.Background(), 1, Category{Label: "Грузия"}, Requester{DisplayName: "Ann", Username: ""})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gw.sent[0].text != "#ЗАЯВКА Тур: Грузия\nИмя: Ann @" {
		t.Fatalf("notice = %q", gw.sent[0].text)
	}
	if text != confirmTourAfter {
		t.Fatalf("confirmation = %q, want after-hours template", text)
	}
}

func TestSubmitAviaWording(t *testing.T) {
	gw := &fakeGateway{}
	r, _, _ := manualRetractor(gw, 3*time.Second)
	p := New("#ЗАЯВКА", gw, r, fixedPolicy(true), nil)

	text, err := p.Submit(context.Background(), 1, Category{Label: "Авиа тур", Avia: true}, Requester{DisplayName: "Ann", Username: "ann"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gw.sent[0].text != "#ЗАЯВКА Авиа тур\nИмя: Ann @ann" {
		t.Fatalf("notice = %q", gw.sent[0].text)
	}
	if text != confirmAviaStaffed {
		t.Fatalf("confirmation = %q", text)
	}
}

func TestSubmitFailsWhenNoticeSendFails(t *testing.T) {
	gw := &fakeGateway{sendErr: errors.New("telegram down")}
	r, delays, _ := manualRetractor(gw, 3*time.Second)
	p := New("#ЗАЯВКА", gw, r, fixedPolicy(true), nil)

	if _, err := p.Submit(context.Background(), 1, Category{Label: "Грузия"}, Requester{}); err == nil {
		t.Fatal("expected error when the notice cannot be sent")
	}
	if len(*delays) != 0 {
		t.Fatal("no retraction must be scheduled for an unsent notice")
	}
}

func TestRetractionErrorsAreAbsorbed(t *testing.T) {
	gw := &fakeGateway{delErr: errors.New("message to delete not found")}
	r, _, fns := manualRetractor(gw, 3*time.Second)
	p := New("#ЗАЯВКА", gw, r, fixedPolicy(true), nil)

	if _, err := p.Submit(context.Background(), 1, Category{Label: "Грузия"}, Requester{}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(*fns) != 1 {
		t.Fatalf("scheduled %d retractions, want 1", len(*fns))
	}
	// running the retraction must not panic despite the deletion error
	(*fns)[0]()
	if len(gw.deleted) != 1 {
		t.Fatalf("attempted %d deletions, want exactly 1", len(gw.deleted))
	}
}

func TestSubmitRecordsLead(t *testing.T) {
	gw := &fakeGateway{}
	r, _, _ := manualRetractor(gw, 3*time.Second)
	j := &fakeJournal{}
	p := New("#ЗАЯВКА", gw, r, fixedPolicy(false), j)

	if _, err := p.Submit(context.Background(), 42, Category{Label: "Питер"}, Requester{DisplayName: "Ann", Username: "ann"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(j.leads) != 1 {
		t.Fatalf("recorded %d leads, want 1", len(j.leads))
	}
	lead := j.leads[0]
	if lead.ChatID != 42 || lead.Category != "Питер" || lead.Staffed {
		t.Fatalf("lead = %+v", lead)
	}
	if lead.CreatedAt.IsZero() {
		t.Fatal("lead timestamp not set")
	}
}

func TestJournalFailureDoesNotFailSubmission(t *testing.T) {
	gw := &fakeGateway{}
	r, _, _ := manualRetractor(gw, 3*time.Second)
	j := &fakeJournal{err: errors.New("db down")}
	p := New("#ЗАЯВКА", gw, r, fixedPolicy(true), j)

	text, err := p.Submit(context.Background(), 1, Category{Label: "Грузия"}, Requester{})
	if err != nil {
		t.Fatalf("journal failure must not fail submission: %v", err)
	}
	if text == "" {
		t.Fatal("expected confirmation text")
	}
}
