package usecase

import (
	"context"
	"time"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/infra/queue"
)

type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	Update(ctx context.Context, c *entity.Contact) error
	UpdateLifecycle(ctx context.Context, id string, lifecycle entity.Lifecycle) error
	Delete(ctx context.Context, id string) error
	HasDependents(ctx context.Context, id string) (bool, error)
}

type VisitorRepository interface {
	Create(ctx context.Context, v *entity.VisitorRecord) error
	FindByContactID(ctx context.Context, contactID string) (*entity.VisitorRecord, error)
	ExistsForContact(ctx context.Context, contactID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type MemberRepository interface {
	Create(ctx context.Context, m *entity.MemberRecord) error
	FindByContactID(ctx context.Context, contactID string) (*entity.MemberRecord, error)
	ExistsForContact(ctx context.Context, contactID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type SoulWinningRepository interface {
	Create(ctx context.Context, r *entity.SoulWinningRecord) error
	FindByID(ctx context.Context, id string) (*entity.SoulWinningRecord, error)
	ExistsForContact(ctx context.Context, contactID string) (bool, error)
	SetConvertedTo(ctx context.Context, id string, target entity.Lifecycle) error
	Delete(ctx context.Context, id string) error
}

type FollowUpRepository interface {
	Create(ctx context.Context, f *entity.FollowUp) error
	FindByID(ctx context.Context, id string) (*entity.FollowUp, error)
	Update(ctx context.Context, f *entity.FollowUp) error
	Delete(ctx context.Context, id string) error
	ClaimDue(ctx context.Context, before time.Time) ([]*entity.FollowUp, error)
}

// AuditSink is the append-only log boundary. Errors are swallowed by the
// audit writer, never by implementations.
type AuditSink interface {
	Append(ctx context.Context, e *entity.AuditEntry) error
}

type TemplateRepository interface {
	FindByName(ctx context.Context, name string) (*entity.MessageTemplate, error)
}

// EventPublisher hands workflow side effects to the queue. Publish failures
// are logged by callers and never fail the primary mutation.
type EventPublisher interface {
	PublishWorkflowEvent(ctx context.Context, evt queue.WorkflowEvent) error
}
