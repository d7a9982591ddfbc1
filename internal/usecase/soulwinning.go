package usecase

import (
	"context"

	"github.com/calebms7/shepherd-backend/internal/entity"
)

type SoulWinningUseCase struct {
	Repo     SoulWinningRepository
	Contacts ContactRepository
	Audit    *AuditWriter
}

func NewSoulWinningUseCase(repo SoulWinningRepository, contacts ContactRepository, audit *AuditWriter) *SoulWinningUseCase {
	return &SoulWinningUseCase{
		Repo:     repo,
		Contacts: contacts,
		Audit:    audit,
	}
}

type CreateSoulWinningInput struct {
	ContactID   string `json:"contact_id"`
	InviterName string `json:"inviter_name"`
	InviterType string `json:"inviter_type"`
	Saved       bool   `json:"saved"`
	Notes       string `json:"notes"`
}

// Create registers an evangelism encounter. One record per contact.
func (uc *SoulWinningUseCase) Create(ctx context.Context, input CreateSoulWinningInput, actor string) (*entity.SoulWinningRecord, error) {
	if errs := ValidateCreateSoulWinningInput(input); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if _, err := uc.Contacts.FindByID(ctx, input.ContactID); err != nil {
		return nil, err
	}

	exists, err := uc.Repo.ExistsForContact(ctx, input.ContactID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &DuplicateRecordError{Kind: "soul_winning", ContactID: input.ContactID}
	}

	record, err := entity.NewSoulWinningRecord(input.ContactID, input.InviterName, input.InviterType, input.Saved, input.Notes)
	if err != nil {
		return nil, NewValidationError("soul_winning", err.Error())
	}

	if err := uc.Repo.Create(ctx, record); err != nil {
		return nil, err
	}

	uc.Audit.Record(ctx, "create", "soul_winning_record", record.ID, nil, record, actor)

	return record, nil
}

// Delete removes the record. Independent of the contact and its lifecycle.
func (uc *SoulWinningUseCase) Delete(ctx context.Context, id, actor string) error {
	record, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.Repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.Audit.Record(ctx, "delete", "soul_winning_record", id, record, nil, actor)
	return nil
}
