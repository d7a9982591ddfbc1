package worker

import (
	"context"
	"log"
	"time"

	"github.com/calebms7/shepherd-backend/internal/infra/database"
	"github.com/calebms7/shepherd-backend/internal/infra/queue"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

// ReminderWorker periodically claims due follow-ups and, once per day, scans
// for birthdays, publishing the matching workflow events. Everything here is
// best-effort: a failed publish is logged and retried implicitly on the next
// claim cycle only for birthdays; claimed follow-ups are reminded at most once.
type ReminderWorker struct {
	followUps *database.FollowUpRepository
	contacts  *database.ContactRepository
	events    usecase.EventPublisher

	tickInterval    time.Duration
	lastBirthdayRun string // YYYY-MM-DD of the last birthday scan
}

func NewReminderWorker(followUps *database.FollowUpRepository, contacts *database.ContactRepository, events usecase.EventPublisher) *ReminderWorker {
	return &ReminderWorker{
		followUps:    followUps,
		contacts:     contacts,
		events:       events,
		tickInterval: time.Minute,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	log.Println("reminder worker started")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("reminder worker stopped")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *ReminderWorker) run(ctx context.Context) {
	w.remindDueFollowUps(ctx)

	today := time.Now().Format("2006-01-02")
	if w.lastBirthdayRun != today {
		if w.greetBirthdays(ctx) {
			w.lastBirthdayRun = today
		}
	}
}

func (w *ReminderWorker) remindDueFollowUps(ctx context.Context) {
	due, err := w.followUps.ClaimDue(ctx, time.Now())
	if err != nil {
		log.Printf("reminder: failed to claim due follow-ups: %v", err)
		return
	}

	for _, f := range due {
		evt := queue.WorkflowEvent{
			Type:      queue.EventEventReminder,
			ContactID: f.ContactID,
			Context: map[string]string{
				"event_name": f.Type + " follow-up",
				"event_date": f.NextActionAt.Format("2006-01-02"),
			},
		}
		if err := w.events.PublishWorkflowEvent(ctx, evt); err != nil {
			log.Printf("reminder: publish failed for follow-up %s: %v", f.ID, err)
		}
	}

	if len(due) > 0 {
		log.Printf("reminder: %d follow-up reminder(s) published", len(due))
	}
}

func (w *ReminderWorker) greetBirthdays(ctx context.Context) bool {
	now := time.Now()

	contacts, err := w.contacts.ListBirthdays(ctx, now.Month(), now.Day())
	if err != nil {
		log.Printf("reminder: birthday scan failed: %v", err)
		return false
	}

	for _, c := range contacts {
		evt := queue.WorkflowEvent{Type: queue.EventBirthday, ContactID: c.ID}
		if err := w.events.PublishWorkflowEvent(ctx, evt); err != nil {
			log.Printf("reminder: birthday publish failed for contact %s: %v", c.ID, err)
		}
	}

	if len(contacts) > 0 {
		log.Printf("reminder: %d birthday greeting(s) published", len(contacts))
	}
	return true
}
