package workflow

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/infra/queue"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

type Message struct {
	Channel string
	To      string
	Subject string
	Body    string
}

// Deliverer is the external delivery collaborator. Opaque, possibly slow,
// possibly unreliable.
type Deliverer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type Status string

const (
	StatusDelivered Status = "delivered"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result is what the caller of Dispatch gets. A failed result is non-fatal:
// it never propagates to, or rolls back, the transition that triggered it.
type Result struct {
	Status    Status
	MessageID string
	Reason    string
}

type route struct {
	template       string
	channel        string
	defaultSubject string
	defaultBody    string
	createFollowUp bool
}

var routes = map[string]route{
	queue.EventNewMember: {
		template:       "welcome_member",
		channel:        ChannelEmail,
		defaultSubject: "Welcome to {{church_name}}, {{first_name}}!",
		defaultBody:    "Hi {{first_name}},\n\nWe are thrilled to welcome you into the {{church_name}} family.\n\nGod bless,\n{{church_name}}",
	},
	queue.EventVisitorFollowup: {
		template:       "visitor_followup",
		channel:        ChannelEmail,
		defaultSubject: "Great to see you at {{church_name}}, {{first_name}}!",
		defaultBody:    "Hi {{first_name}},\n\nThank you for visiting {{church_name}}. We would love to see you again this Sunday.\n\n{{church_name}}",
		createFollowUp: true,
	},
	queue.EventBirthday: {
		template:       "birthday",
		channel:        ChannelEmail,
		defaultSubject: "Happy birthday, {{first_name}}!",
		defaultBody:    "Happy birthday {{first_name}}! Everyone at {{church_name}} is celebrating with you today.",
	},
	queue.EventEventReminder: {
		template:       "event_reminder",
		channel:        ChannelEmail,
		defaultSubject: "Reminder: {{event_name}}",
		defaultBody:    "Hi {{first_name}},\n\nA reminder that {{event_name}} is coming up on {{event_date}}. See you there!\n\n{{church_name}}",
	},
}

// Dispatcher routes a workflow event to its handler: load the contact,
// resolve the message template, substitute placeholders, hand the rendered
// message to the delivery collaborator.
type Dispatcher struct {
	Contacts   usecase.ContactRepository
	Templates  usecase.TemplateRepository
	FollowUps  usecase.FollowUpRepository
	Deliverer  Deliverer
	ChurchName string
}

func NewDispatcher(
	contacts usecase.ContactRepository,
	templates usecase.TemplateRepository,
	followUps usecase.FollowUpRepository,
	deliverer Deliverer,
	churchName string,
) *Dispatcher {
	return &Dispatcher{
		Contacts:   contacts,
		Templates:  templates,
		FollowUps:  followUps,
		Deliverer:  deliverer,
		ChurchName: churchName,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, evt queue.WorkflowEvent) Result {
	r, ok := routes[evt.Type]
	if !ok {
		log.Printf("dispatcher: unknown event type %q, skipping", evt.Type)
		return Result{Status: StatusSkipped, Reason: "unknown event type"}
	}

	contact, err := d.Contacts.FindByID(ctx, evt.ContactID)
	if err != nil {
		log.Printf("dispatcher: contact %s lookup failed: %v", evt.ContactID, err)
		return Result{Status: StatusFailed, Reason: err.Error()}
	}

	if r.createFollowUp {
		d.createFollowUpTask(ctx, contact.ID)
	}

	to := contact.Email
	if r.channel == ChannelSMS {
		to = contact.Phone
	}
	// Absence of a contact channel is not a failure of the workflow.
	if to == "" {
		return Result{Status: StatusSkipped, Reason: "contact has no " + r.channel + " address"}
	}

	subject, body := d.resolveTemplate(ctx, r)

	values := d.placeholderValues(contact, evt.Context)
	msg := Message{
		Channel: r.channel,
		To:      to,
		Subject: Render(subject, values),
		Body:    Render(body, values),
	}

	messageID, err := d.Deliverer.Send(ctx, msg)
	if err != nil {
		log.Printf("dispatcher: delivery failed for contact %s (%s): %v", contact.ID, evt.Type, err)
		return Result{Status: StatusFailed, Reason: err.Error()}
	}

	return Result{Status: StatusDelivered, MessageID: messageID}
}

// Handle adapts Dispatch for the queue worker: only a failed delivery is
// reported back, so the worker can dead-letter the event.
func (d *Dispatcher) Handle(ctx context.Context, evt queue.WorkflowEvent) error {
	if res := d.Dispatch(ctx, evt); res.Status == StatusFailed {
		return errors.New(res.Reason)
	}
	return nil
}

func (d *Dispatcher) resolveTemplate(ctx context.Context, r route) (subject, body string) {
	subject, body = r.defaultSubject, r.defaultBody

	if d.Templates == nil {
		return subject, body
	}

	tmpl, err := d.Templates.FindByName(ctx, r.template)
	if err != nil {
		if !usecase.IsNotFound(err) {
			log.Printf("dispatcher: template %q lookup failed, using default: %v", r.template, err)
		}
		return subject, body
	}

	if tmpl.Subject != "" {
		subject = tmpl.Subject
	}
	if tmpl.Body != "" {
		body = tmpl.Body
	}
	return subject, body
}

func (d *Dispatcher) placeholderValues(contact *entity.Contact, eventCtx map[string]string) map[string]string {
	values := map[string]string{
		"first_name":  contact.FirstName,
		"last_name":   contact.LastName,
		"full_name":   contact.FullName(),
		"email":       contact.Email,
		"phone":       contact.Phone,
		"church_name": d.ChurchName,
	}
	for k, v := range eventCtx {
		values[strings.ToLower(k)] = v
	}
	return values
}

// createFollowUpTask is the automated follow-up trigger: best-effort, a
// failure is logged and the message still goes out.
func (d *Dispatcher) createFollowUpTask(ctx context.Context, contactID string) {
	if d.FollowUps == nil {
		return
	}

	task, err := entity.NewFollowUp(contactID, "visitor_followup", time.Now().AddDate(0, 0, 3), "")
	if err != nil {
		log.Printf("dispatcher: follow-up task build failed for contact %s: %v", contactID, err)
		return
	}

	if err := d.FollowUps.Create(ctx, task); err != nil {
		log.Printf("dispatcher: follow-up task create failed for contact %s: %v", contactID, err)
	}
}
