package usecase

import (
	"context"
	"time"

	"github.com/calebms7/shepherd-backend/internal/entity"
)

type FollowUpUseCase struct {
	Repo     FollowUpRepository
	Contacts ContactRepository
	Audit    *AuditWriter
}

func NewFollowUpUseCase(repo FollowUpRepository, contacts ContactRepository, audit *AuditWriter) *FollowUpUseCase {
	return &FollowUpUseCase{
		Repo:     repo,
		Contacts: contacts,
		Audit:    audit,
	}
}

type CreateFollowUpInput struct {
	ContactID    string    `json:"contact_id"`
	Type         string    `json:"type"`
	NextActionAt time.Time `json:"next_action_at"`
	AssignedTo   string    `json:"assigned_to"`
	Notes        string    `json:"notes"`
}

func (uc *FollowUpUseCase) Create(ctx context.Context, input CreateFollowUpInput, actor string) (*entity.FollowUp, error) {
	if errs := ValidateCreateFollowUpInput(input); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if _, err := uc.Contacts.FindByID(ctx, input.ContactID); err != nil {
		return nil, err
	}

	followUp, err := entity.NewFollowUp(input.ContactID, input.Type, input.NextActionAt, input.Notes)
	if err != nil {
		return nil, NewValidationError("follow_up", err.Error())
	}
	if input.AssignedTo != "" {
		followUp.Reassign(input.AssignedTo)
	}

	if err := uc.Repo.Create(ctx, followUp); err != nil {
		return nil, err
	}

	uc.Audit.Record(ctx, "create", "follow_up", followUp.ID, nil, followUp, actor)

	return followUp, nil
}

// Complete moves pending → completed and stamps completed-at. Terminal.
func (uc *FollowUpUseCase) Complete(ctx context.Context, id, actor string) error {
	followUp, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	before := *followUp
	if err := followUp.Complete(); err != nil {
		return NewValidationError("status", err.Error())
	}

	if err := uc.Repo.Update(ctx, followUp); err != nil {
		return err
	}

	uc.Audit.Record(ctx, "complete", "follow_up", followUp.ID, before, followUp, actor)
	return nil
}

func (uc *FollowUpUseCase) Cancel(ctx context.Context, id, actor string) error {
	followUp, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	before := *followUp
	if err := followUp.Cancel(); err != nil {
		return NewValidationError("status", err.Error())
	}

	if err := uc.Repo.Update(ctx, followUp); err != nil {
		return err
	}

	uc.Audit.Record(ctx, "cancel", "follow_up", followUp.ID, before, followUp, actor)
	return nil
}

// Reassign is allowed regardless of status.
func (uc *FollowUpUseCase) Reassign(ctx context.Context, id, assignee, actor string) error {
	followUp, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	before := *followUp
	followUp.Reassign(assignee)

	if err := uc.Repo.Update(ctx, followUp); err != nil {
		return err
	}

	uc.Audit.Record(ctx, "assign", "follow_up", followUp.ID, before, followUp, actor)
	return nil
}

func (uc *FollowUpUseCase) Delete(ctx context.Context, id, actor string) error {
	followUp, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.Repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.Audit.Record(ctx, "delete", "follow_up", id, followUp, nil, actor)
	return nil
}
