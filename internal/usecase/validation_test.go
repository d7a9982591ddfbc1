package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calebms7/shepherd-backend/internal/usecase"
)

func fieldNames(errs []usecase.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateCreateContactInput_Valid(t *testing.T) {
	errs := usecase.ValidateCreateContactInput(usecase.CreateContactInput{
		FirstName: "Ana",
		LastName:  "Souza",
		Email:     "ana@example.com",
		Phone:     "+55 (11) 98765-4321",
		BirthDate: "1990-05-14",
	})

	assert.Empty(t, errs)
}

func TestValidateCreateContactInput_OnlyFirstNameRequired(t *testing.T) {
	errs := usecase.ValidateCreateContactInput(usecase.CreateContactInput{FirstName: "Ana"})

	assert.Empty(t, errs)
}

func TestValidateCreateContactInput_CollectsAllFailures(t *testing.T) {
	errs := usecase.ValidateCreateContactInput(usecase.CreateContactInput{
		FirstName: "  ",
		Email:     "not-an-email",
		Phone:     "123",
		BirthDate: "14/05/1990",
	})

	names := fieldNames(errs)
	assert.Contains(t, names, "first_name")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "phone")
	assert.Contains(t, names, "birth_date")
}

func TestValidateCreateContactInput_PhoneLengthBounds(t *testing.T) {
	tooShort := usecase.ValidateCreateContactInput(usecase.CreateContactInput{FirstName: "Ana", Phone: "123456789"})
	assert.Contains(t, fieldNames(tooShort), "phone")

	tooLong := usecase.ValidateCreateContactInput(usecase.CreateContactInput{FirstName: "Ana", Phone: "1234567890123456"})
	assert.Contains(t, fieldNames(tooLong), "phone")

	ok := usecase.ValidateCreateContactInput(usecase.CreateContactInput{FirstName: "Ana", Phone: "1234567890"})
	assert.Empty(t, ok)
}

func TestValidateCreateSoulWinningInput(t *testing.T) {
	errs := usecase.ValidateCreateSoulWinningInput(usecase.CreateSoulWinningInput{})
	names := fieldNames(errs)
	assert.Contains(t, names, "contact_id")
	assert.Contains(t, names, "inviter_name")

	errs = usecase.ValidateCreateSoulWinningInput(usecase.CreateSoulWinningInput{
		ContactID:   "contact-1",
		InviterName: "Carlos",
		InviterType: "neighbor",
	})
	assert.Equal(t, []string{"inviter_type"}, fieldNames(errs))

	errs = usecase.ValidateCreateSoulWinningInput(usecase.CreateSoulWinningInput{
		ContactID:   "contact-1",
		InviterName: "Carlos",
		InviterType: "event",
	})
	assert.Empty(t, errs)
}

func TestValidateCreateFollowUpInput(t *testing.T) {
	errs := usecase.ValidateCreateFollowUpInput(usecase.CreateFollowUpInput{})
	names := fieldNames(errs)
	assert.Contains(t, names, "contact_id")
	assert.Contains(t, names, "type")

	errs = usecase.ValidateCreateFollowUpInput(usecase.CreateFollowUpInput{
		ContactID: "contact-1",
		Type:      "prayer",
	})
	assert.Empty(t, errs)
}

func TestValidationError_Message(t *testing.T) {
	err := usecase.NewValidationError("target", "must be visitor or member")
	assert.Equal(t, "validation failed: target must be visitor or member", err.Error())

	empty := &usecase.ValidationError{}
	assert.Equal(t, "validation failed", empty.Error())
}
