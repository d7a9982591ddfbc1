package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type FollowUpStatus string

const (
	FollowUpPending   FollowUpStatus = "pending"
	FollowUpCompleted FollowUpStatus = "completed"
	FollowUpCancelled FollowUpStatus = "cancelled"
)

// FollowUp is a task tied to a contact. Created by staff or by automated
// triggers (visitor follow-up after a promotion, reminder worker).
type FollowUp struct {
	ID           string         `json:"id"`
	ContactID    string         `json:"contact_id"`
	Type         string         `json:"type"` // visitor_followup, prayer, pastoral, custom
	Status       FollowUpStatus `json:"status"`
	NextActionAt time.Time      `json:"next_action_at"`
	AssignedTo   *string        `json:"assigned_to,omitempty"`
	Notes        string         `json:"notes"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	ReminderSent bool           `json:"reminder_sent"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func NewFollowUp(contactID, followUpType string, nextActionAt time.Time, notes string) (*FollowUp, error) {
	if contactID == "" {
		return nil, errors.New("contact id is required")
	}
	if followUpType == "" {
		return nil, errors.New("type is required")
	}
	if nextActionAt.IsZero() {
		nextActionAt = time.Now().AddDate(0, 0, 3)
	}
	return &FollowUp{
		ID:           uuid.New().String(),
		ContactID:    contactID,
		Type:         followUpType,
		Status:       FollowUpPending,
		NextActionAt: nextActionAt,
		Notes:        notes,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// Complete moves pending → completed. Terminal.
func (f *FollowUp) Complete() error {
	if f.Status != FollowUpPending {
		return errors.New("follow-up is not pending")
	}
	now := time.Now()
	f.Status = FollowUpCompleted
	f.CompletedAt = &now
	f.UpdatedAt = now
	return nil
}

// Cancel moves pending → cancelled.
func (f *FollowUp) Cancel() error {
	if f.Status != FollowUpPending {
		return errors.New("follow-up is not pending")
	}
	f.Status = FollowUpCancelled
	f.UpdatedAt = time.Now()
	return nil
}

// Reassign is allowed in any status.
func (f *FollowUp) Reassign(userID string) {
	if userID == "" {
		f.AssignedTo = nil
	} else {
		f.AssignedTo = &userID
	}
	f.UpdatedAt = time.Now()
}
