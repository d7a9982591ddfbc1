package usecase

import (
	"context"

	"github.com/calebms7/shepherd-backend/internal/entity"
)

// ConversionUseCase sequences soul-winning conversions that span more than
// one state-machine call.
type ConversionUseCase struct {
	Souls     SoulWinningRepository
	Lifecycle *LifecycleUseCase
	Audit     *AuditWriter
}

func NewConversionUseCase(souls SoulWinningRepository, lifecycle *LifecycleUseCase, audit *AuditWriter) *ConversionUseCase {
	return &ConversionUseCase{
		Souls:     souls,
		Lifecycle: lifecycle,
		Audit:     audit,
	}
}

// Convert advances a soul-winning record to visitor or member.
//
// A record already converted to the target (or to member, which is terminal)
// is a no-op returning the existing state, not an error. A record converted
// to visitor may progress to member. On state-machine failure the record is
// left untouched and the error propagates unchanged; if marking the record
// fails after the promotion committed, the promotion is compensated.
func (uc *ConversionUseCase) Convert(ctx context.Context, soulID string, target entity.Lifecycle, actor string) (*entity.SoulWinningRecord, error) {
	if target != entity.LifecycleVisitor && target != entity.LifecycleMember {
		return nil, NewValidationError("target", "must be visitor or member")
	}

	record, err := uc.Souls.FindByID(ctx, soulID)
	if err != nil {
		return nil, err
	}

	// Idempotent guard: converted_to is monotonic.
	if record.Converted(target) {
		return record, nil
	}

	before := *record

	txn := NewTransaction()

	switch target {
	case entity.LifecycleVisitor:
		txn.AddOperation("promote_to_visitor", func(ctx context.Context) error {
			_, err := uc.Lifecycle.PromoteToVisitor(ctx, PromoteToVisitorInput{
				ContactID: record.ContactID,
				Saved:     record.Saved,
				Notes:     record.Notes,
			}, actor)
			return err
		})
		txn.AddCompensation("remove_visitor_record", func(ctx context.Context) error {
			return uc.Lifecycle.RemoveVisitorRecord(ctx, record.ContactID, actor)
		})

	case entity.LifecycleMember:
		txn.AddOperation("promote_to_member", func(ctx context.Context) error {
			_, err := uc.Lifecycle.PromoteToMember(ctx, PromoteToMemberInput{
				ContactID: record.ContactID,
				Notes:     record.Notes,
			}, actor)
			return err
		})
		txn.AddCompensation("remove_member_record", func(ctx context.Context) error {
			return uc.Lifecycle.RemoveMemberRecord(ctx, record.ContactID, actor)
		})
	}

	txn.AddOperation("mark_converted", func(ctx context.Context) error {
		return uc.Souls.SetConvertedTo(ctx, record.ID, target)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, err
	}

	record.ConvertedTo = &target

	uc.Audit.Record(ctx, "convert", "soul_winning_record", record.ID, before, record, actor)

	return record, nil
}
