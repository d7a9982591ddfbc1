package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitorRecord is 1:1 with a contact (unique constraint on contact_id).
type VisitorRecord struct {
	ID         string    `json:"id"`
	ContactID  string    `json:"contact_id"`
	FirstVisit time.Time `json:"first_visit"`
	Saved      bool      `json:"saved"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewVisitorRecord(contactID string, firstVisit time.Time, saved bool, notes string) *VisitorRecord {
	if firstVisit.IsZero() {
		firstVisit = time.Now()
	}
	return &VisitorRecord{
		ID:         uuid.New().String(),
		ContactID:  contactID,
		FirstVisit: firstVisit,
		Saved:      saved,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}
}
