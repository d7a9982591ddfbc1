package usecase

import (
	"context"

	"github.com/calebms7/shepherd-backend/internal/entity"
)

type BulkOperation string

const (
	BulkDelete   BulkOperation = "delete"   // follow-ups
	BulkComplete BulkOperation = "complete" // follow-ups
	BulkAssign   BulkOperation = "assign"   // follow-ups
	BulkConvert  BulkOperation = "convert"  // soul-winning records
)

type BulkParams struct {
	AssignedTo string           `json:"assigned_to,omitempty"`
	Target     entity.Lifecycle `json:"target,omitempty"`
}

type ItemError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFailure Outcome = "failure"
)

// Report aggregates per-item outcomes. Partial success is surfaced as its
// own outcome, never collapsed into a boolean.
type Report struct {
	SuccessCount int         `json:"success_count"`
	FailureCount int         `json:"failure_count"`
	Errors       []ItemError `json:"errors"`
}

func (r Report) Outcome() Outcome {
	switch {
	case r.FailureCount == 0:
		return OutcomeSuccess
	case r.SuccessCount == 0:
		return OutcomeFailure
	default:
		return OutcomePartial
	}
}

// BulkCoordinator applies one operation over a set of ids, one item at a
// time, collecting an outcome per item. A single failure never aborts the
// batch; only context cancellation stops further items, and already-committed
// items are never undone.
type BulkCoordinator struct {
	FollowUps   *FollowUpUseCase
	Conversions *ConversionUseCase
}

func NewBulkCoordinator(followUps *FollowUpUseCase, conversions *ConversionUseCase) *BulkCoordinator {
	return &BulkCoordinator{
		FollowUps:   followUps,
		Conversions: conversions,
	}
}

func (c *BulkCoordinator) Apply(ctx context.Context, op BulkOperation, ids []string, params BulkParams, actor string) (Report, error) {
	var item func(ctx context.Context, id string) error

	switch op {
	case BulkDelete:
		item = func(ctx context.Context, id string) error {
			return c.FollowUps.Delete(ctx, id, actor)
		}
	case BulkComplete:
		item = func(ctx context.Context, id string) error {
			return c.FollowUps.Complete(ctx, id, actor)
		}
	case BulkAssign:
		item = func(ctx context.Context, id string) error {
			return c.FollowUps.Reassign(ctx, id, params.AssignedTo, actor)
		}
	case BulkConvert:
		item = func(ctx context.Context, id string) error {
			_, err := c.Conversions.Convert(ctx, id, params.Target, actor)
			return err
		}
	default:
		return Report{}, NewValidationError("operation", "must be delete, complete, assign or convert")
	}

	return c.run(ctx, ids, item), nil
}

func (c *BulkCoordinator) run(ctx context.Context, ids []string, item func(ctx context.Context, id string) error) Report {
	report := Report{Errors: []ItemError{}}

	for _, id := range ids {
		// A caller-initiated abort stops issuing further operations but never
		// touches items already committed.
		if err := ctx.Err(); err != nil {
			report.FailureCount++
			report.Errors = append(report.Errors, ItemError{ID: id, Message: "cancelled: " + err.Error()})
			continue
		}

		if err := item(ctx, id); err != nil {
			report.FailureCount++
			report.Errors = append(report.Errors, ItemError{ID: id, Message: err.Error()})
		} else {
			report.SuccessCount++
		}
	}

	return report
}
