package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SoulWinningRecord captures an evangelism encounter. One record per contact.
type SoulWinningRecord struct {
	ID          string     `json:"id"`
	ContactID   string     `json:"contact_id"`
	InviterName string     `json:"inviter_name"`
	InviterType string     `json:"inviter_type"` // member, staff, event
	Saved       bool       `json:"saved"`
	ConvertedTo *Lifecycle `json:"converted_to,omitempty"` // visitor or member, monotonic
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewSoulWinningRecord(contactID, inviterName, inviterType string, saved bool, notes string) (*SoulWinningRecord, error) {
	rec := &SoulWinningRecord{
		ID:          uuid.New().String(),
		ContactID:   contactID,
		InviterName: inviterName,
		InviterType: inviterType,
		Saved:       saved,
		Notes:       notes,
		CreatedAt:   time.Now(),
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

func (r *SoulWinningRecord) Validate() error {
	if r.ContactID == "" {
		return errors.New("contact id is required")
	}
	if r.InviterName == "" {
		return errors.New("inviter name is required")
	}
	return nil
}

// Converted reports whether the record already reached the given target.
// A record converted to member is terminal for every target.
func (r *SoulWinningRecord) Converted(target Lifecycle) bool {
	if r.ConvertedTo == nil {
		return false
	}
	return *r.ConvertedTo == LifecycleMember || *r.ConvertedTo == target
}
