package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an append-only snapshot of a mutating operation.
// Never updated or deleted by the application.
type AuditEntry struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"` // create, update, delete, convert, demote, complete, cancel, assign
	EntityKind string          `json:"entity_kind"`
	EntityID   string          `json:"entity_id"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	Actor      string          `json:"actor"`
	CreatedAt  time.Time       `json:"created_at"`
}

func NewAuditEntry(action, entityKind, entityID string, before, after json.RawMessage, actor string) *AuditEntry {
	if actor == "" {
		actor = "system"
	}
	return &AuditEntry{
		ID:         uuid.New().String(),
		Action:     action,
		EntityKind: entityKind,
		EntityID:   entityID,
		Before:     before,
		After:      after,
		Actor:      actor,
		CreatedAt:  time.Now(),
	}
}
