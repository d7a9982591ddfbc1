package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberRecord is 1:1 with a contact (unique constraint on contact_id).
// It may coexist with an earlier VisitorRecord.
type MemberRecord struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contact_id"`
	JoinedAt  time.Time `json:"joined_at"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMemberRecord(contactID string, joinedAt time.Time, notes string) *MemberRecord {
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}
	return &MemberRecord{
		ID:        uuid.New().String(),
		ContactID: contactID,
		JoinedAt:  joinedAt,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
}
