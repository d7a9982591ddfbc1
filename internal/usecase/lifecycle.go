package usecase

import (
	"context"
	"log"
	"time"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/infra/queue"
)

// LifecycleUseCase is the state machine for contact → visitor → member.
// No regression transition is exposed; Demote exists only for record deletion.
//
// The contact row is re-read immediately before every precondition check, and
// the store-level unique index on contact_id is the authoritative guard:
// repositories surface a violation as DuplicateRecordError, so two racing
// promotions cannot both insert.
type LifecycleUseCase struct {
	Contacts ContactRepository
	Visitors VisitorRepository
	Members  MemberRepository
	Audit    *AuditWriter
	Events   EventPublisher
}

func NewLifecycleUseCase(
	contacts ContactRepository,
	visitors VisitorRepository,
	members MemberRepository,
	audit *AuditWriter,
	events EventPublisher,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		Contacts: contacts,
		Visitors: visitors,
		Members:  members,
		Audit:    audit,
		Events:   events,
	}
}

type PromoteToVisitorInput struct {
	ContactID  string    `json:"contact_id"`
	FirstVisit time.Time `json:"first_visit"`
	Saved      bool      `json:"saved"`
	Notes      string    `json:"notes"`
}

type PromoteToMemberInput struct {
	ContactID string    `json:"contact_id"`
	JoinedAt  time.Time `json:"joined_at"`
	Notes     string    `json:"notes"`
}

// PromoteToVisitor inserts a VisitorRecord and advances the lifecycle.
// The member check always runs before the duplicate check.
func (uc *LifecycleUseCase) PromoteToVisitor(ctx context.Context, input PromoteToVisitorInput, actor string) (*entity.VisitorRecord, error) {
	contact, err := uc.Contacts.FindByID(ctx, input.ContactID)
	if err != nil {
		return nil, err
	}

	if contact.Lifecycle == entity.LifecycleMember {
		return nil, &AlreadyMemberError{ContactID: contact.ID}
	}

	exists, err := uc.Visitors.ExistsForContact(ctx, contact.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &DuplicateRecordError{Kind: "visitor", ContactID: contact.ID}
	}

	record := entity.NewVisitorRecord(contact.ID, input.FirstVisit, input.Saved, input.Notes)

	before := *contact

	if err := uc.Visitors.Create(ctx, record); err != nil {
		return nil, err
	}
	if err := uc.Contacts.UpdateLifecycle(ctx, contact.ID, entity.LifecycleVisitor); err != nil {
		// Keep lifecycle and records consistent: drop the record we just inserted.
		if delErr := uc.Visitors.Delete(ctx, record.ID); delErr != nil {
			log.Printf("lifecycle: failed to undo visitor record %s: %v", record.ID, delErr)
		}
		return nil, err
	}

	after := *contact
	after.Lifecycle = entity.LifecycleVisitor

	uc.Audit.Record(ctx, "create", "visitor", record.ID, before, after, actor)
	uc.publish(ctx, queue.EventVisitorFollowup, contact.ID, nil)

	return record, nil
}

// PromoteToMember inserts a MemberRecord and advances the lifecycle. A prior
// VisitorRecord may coexist (visitor → member progression).
func (uc *LifecycleUseCase) PromoteToMember(ctx context.Context, input PromoteToMemberInput, actor string) (*entity.MemberRecord, error) {
	contact, err := uc.Contacts.FindByID(ctx, input.ContactID)
	if err != nil {
		return nil, err
	}

	// Checked against the lifecycle field, not the member table, so a contact
	// marked member is rejected even if its record row is missing.
	if contact.Lifecycle == entity.LifecycleMember {
		return nil, &AlreadyMemberError{ContactID: contact.ID}
	}

	exists, err := uc.Members.ExistsForContact(ctx, contact.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &DuplicateRecordError{Kind: "member", ContactID: contact.ID}
	}

	record := entity.NewMemberRecord(contact.ID, input.JoinedAt, input.Notes)

	before := *contact

	if err := uc.Members.Create(ctx, record); err != nil {
		return nil, err
	}
	if err := uc.Contacts.UpdateLifecycle(ctx, contact.ID, entity.LifecycleMember); err != nil {
		if delErr := uc.Members.Delete(ctx, record.ID); delErr != nil {
			log.Printf("lifecycle: failed to undo member record %s: %v", record.ID, delErr)
		}
		return nil, err
	}

	after := *contact
	after.Lifecycle = entity.LifecycleMember

	uc.Audit.Record(ctx, "create", "member", record.ID, before, after, actor)
	uc.publish(ctx, queue.EventNewMember, contact.ID, nil)

	return record, nil
}

// RemoveMemberRecord deletes a contact's member record and demotes the
// lifecycle. Not a user-facing conversion.
func (uc *LifecycleUseCase) RemoveMemberRecord(ctx context.Context, contactID, actor string) error {
	record, err := uc.Members.FindByContactID(ctx, contactID)
	if err != nil {
		return err
	}

	if err := uc.Members.Delete(ctx, record.ID); err != nil {
		return err
	}

	uc.Audit.Record(ctx, "delete", "member", record.ID, record, nil, actor)

	return uc.Demote(ctx, contactID, actor)
}

// RemoveVisitorRecord deletes a contact's visitor record and reconciles the
// lifecycle with the records that remain.
func (uc *LifecycleUseCase) RemoveVisitorRecord(ctx context.Context, contactID, actor string) error {
	record, err := uc.Visitors.FindByContactID(ctx, contactID)
	if err != nil {
		return err
	}

	if err := uc.Visitors.Delete(ctx, record.ID); err != nil {
		return err
	}

	uc.Audit.Record(ctx, "delete", "visitor", record.ID, record, nil, actor)

	return uc.reconcile(ctx, contactID, actor)
}

// Demote resets the lifecycle after a member record is deleted. It falls back
// to visitor when a VisitorRecord still exists, else to contact, so the
// lifecycle keeps reflecting the most advanced record present.
func (uc *LifecycleUseCase) Demote(ctx context.Context, contactID, actor string) error {
	return uc.reconcile(ctx, contactID, actor)
}

func (uc *LifecycleUseCase) reconcile(ctx context.Context, contactID, actor string) error {
	contact, err := uc.Contacts.FindByID(ctx, contactID)
	if err != nil {
		return err
	}

	target := entity.LifecycleContact

	hasMember, err := uc.Members.ExistsForContact(ctx, contactID)
	if err != nil {
		return err
	}
	if hasMember {
		target = entity.LifecycleMember
	} else {
		hasVisitor, err := uc.Visitors.ExistsForContact(ctx, contactID)
		if err != nil {
			return err
		}
		if hasVisitor {
			target = entity.LifecycleVisitor
		}
	}

	if contact.Lifecycle == target {
		return nil
	}

	if err := uc.Contacts.UpdateLifecycle(ctx, contactID, target); err != nil {
		return err
	}

	before := *contact
	after := *contact
	after.Lifecycle = target
	uc.Audit.Record(ctx, "demote", "contact", contactID, before, after, actor)

	return nil
}

// publish is best-effort: a queue failure is logged and never surfaced to the
// caller, the primary transition already committed.
func (uc *LifecycleUseCase) publish(ctx context.Context, eventType, contactID string, eventCtx map[string]string) {
	if uc.Events == nil {
		return
	}

	evt := queue.WorkflowEvent{
		Type:      eventType,
		ContactID: contactID,
		Context:   eventCtx,
	}
	if err := uc.Events.PublishWorkflowEvent(ctx, evt); err != nil {
		log.Printf("lifecycle: workflow publish failed for contact %s (%s): %v", contactID, eventType, err)
	}
}
