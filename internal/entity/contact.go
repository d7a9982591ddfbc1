package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lifecycle is the canonical status of a contact. Exactly one value at any
// time; only the lifecycle use case mutates it.
type Lifecycle string

const (
	LifecycleContact Lifecycle = "contact"
	LifecycleVisitor Lifecycle = "visitor"
	LifecycleMember  Lifecycle = "member"
)

// Rank orders the states by advancement (member > visitor > contact).
func (l Lifecycle) Rank() int {
	switch l {
	case LifecycleMember:
		return 2
	case LifecycleVisitor:
		return 1
	default:
		return 0
	}
}

func (l Lifecycle) Valid() bool {
	return l == LifecycleContact || l == LifecycleVisitor || l == LifecycleMember
}

type Contact struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate string    `json:"birth_date"` // YYYY-MM-DD, optional
	Lifecycle Lifecycle `json:"lifecycle"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewContact(firstName, lastName, email, phone, birthDate string) (*Contact, error) {
	contact := &Contact{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		BirthDate: birthDate,
		Lifecycle: LifecycleContact,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return errors.New("first name is required")
	}
	if !c.Lifecycle.Valid() {
		return errors.New("invalid lifecycle status")
	}
	return nil
}

func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
