package usecase

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/calebms7/shepherd-backend/internal/entity"
)

var nonDigits = regexp.MustCompile(`\D`)

func ValidateCreateContactInput(input CreateContactInput) []FieldError {
	var errors []FieldError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, FieldError{"first_name", "is required"})
	} else if len(input.FirstName) > 100 {
		errors = append(errors, FieldError{"first_name", "must not exceed 100 characters"})
	}

	if len(input.LastName) > 100 {
		errors = append(errors, FieldError{"last_name", "must not exceed 100 characters"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, FieldError{"email", "is invalid"})
		}
	}

	if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, FieldError{"phone", "must be a valid phone number"})
	}

	if input.BirthDate != "" && !isValidDate(input.BirthDate) {
		errors = append(errors, FieldError{"birth_date", "must be a valid date (YYYY-MM-DD)"})
	}

	return errors
}

func ValidateContact(c *entity.Contact) []FieldError {
	return ValidateCreateContactInput(CreateContactInput{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		BirthDate: c.BirthDate,
	})
}

func ValidateCreateSoulWinningInput(input CreateSoulWinningInput) []FieldError {
	var errors []FieldError

	if strings.TrimSpace(input.ContactID) == "" {
		errors = append(errors, FieldError{"contact_id", "is required"})
	}
	if strings.TrimSpace(input.InviterName) == "" {
		errors = append(errors, FieldError{"inviter_name", "is required"})
	}
	if input.InviterType != "" && !isValidInviterType(input.InviterType) {
		errors = append(errors, FieldError{"inviter_type", "must be member, staff or event"})
	}

	return errors
}

func ValidateCreateFollowUpInput(input CreateFollowUpInput) []FieldError {
	var errors []FieldError

	if strings.TrimSpace(input.ContactID) == "" {
		errors = append(errors, FieldError{"contact_id", "is required"})
	}
	if strings.TrimSpace(input.Type) == "" {
		errors = append(errors, FieldError{"type", "is required"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 15
}

func isValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}

func isValidInviterType(t string) bool {
	switch t {
	case "member", "staff", "event":
		return true
	}
	return false
}
