package usecase

import (
	"context"
	"encoding/json"
	"log"

	"github.com/calebms7/shepherd-backend/internal/entity"
)

// AuditWriter appends before/after snapshots for every mutating operation.
// Fire-and-forget: sink failures are logged, never returned, so audit-log
// unavailability cannot block business operations.
type AuditWriter struct {
	Sink AuditSink
}

func NewAuditWriter(sink AuditSink) *AuditWriter {
	return &AuditWriter{Sink: sink}
}

func (w *AuditWriter) Record(ctx context.Context, action, entityKind, entityID string, before, after any, actor string) {
	if w == nil || w.Sink == nil {
		return
	}

	entry := entity.NewAuditEntry(action, entityKind, entityID, snapshot(before), snapshot(after), actor)

	if err := w.Sink.Append(ctx, entry); err != nil {
		log.Printf("audit: append failed for %s %s/%s: %v", action, entityKind, entityID, err)
	}
}

func snapshot(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("audit: snapshot marshal failed: %v", err)
		return nil
	}
	return raw
}
