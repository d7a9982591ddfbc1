package usecase

import (
	"context"

	"github.com/calebms7/shepherd-backend/internal/entity"
)

type ContactUseCase struct {
	Contacts ContactRepository
	Audit    *AuditWriter
}

func NewContactUseCase(contacts ContactRepository, audit *AuditWriter) *ContactUseCase {
	return &ContactUseCase{
		Contacts: contacts,
		Audit:    audit,
	}
}

type CreateContactInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
}

func (uc *ContactUseCase) Create(ctx context.Context, input CreateContactInput, actor string) (*entity.Contact, error) {
	if errs := ValidateCreateContactInput(input); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	contact, err := entity.NewContact(input.FirstName, input.LastName, input.Email, input.Phone, input.BirthDate)
	if err != nil {
		return nil, NewValidationError("contact", err.Error())
	}

	if err := uc.Contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	uc.Audit.Record(ctx, "create", "contact", contact.ID, nil, contact, actor)

	return contact, nil
}

func (uc *ContactUseCase) Get(ctx context.Context, id string) (*entity.Contact, error) {
	return uc.Contacts.FindByID(ctx, id)
}

type UpdateContactInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date"`
}

// Update patches identity fields. The lifecycle is never touched here; only
// the lifecycle use case mutates it.
func (uc *ContactUseCase) Update(ctx context.Context, id string, input UpdateContactInput, actor string) (*entity.Contact, error) {
	contact, err := uc.Contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := *contact

	if input.FirstName != nil {
		contact.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		contact.LastName = *input.LastName
	}
	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.BirthDate != nil {
		contact.BirthDate = *input.BirthDate
	}

	if errs := ValidateContact(contact); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if err := uc.Contacts.Update(ctx, contact); err != nil {
		return nil, err
	}

	uc.Audit.Record(ctx, "update", "contact", contact.ID, before, contact, actor)

	return contact, nil
}

// Delete removes a contact. Blocked while visitor/member/soul-winning/
// follow-up records still reference it.
func (uc *ContactUseCase) Delete(ctx context.Context, id, actor string) error {
	contact, err := uc.Contacts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hasDependents, err := uc.Contacts.HasDependents(ctx, id)
	if err != nil {
		return err
	}
	if hasDependents {
		return NewValidationError("id", "contact still has dependent records")
	}

	if err := uc.Contacts.Delete(ctx, id); err != nil {
		return err
	}

	uc.Audit.Record(ctx, "delete", "contact", id, contact, nil, actor)
	return nil
}
