package database

import (
	"context"
	"database/sql"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

// AuditRepository is the append-only log sink. No read or query interface;
// entries are never updated or deleted by the application.
type AuditRepository struct {
	DB *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) Append(ctx context.Context, e *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (id, action, entity_kind, entity_id, before_state, after_state, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		e.ID,
		e.Action,
		e.EntityKind,
		e.EntityID,
		[]byte(e.Before),
		[]byte(e.After),
		e.Actor,
		e.CreatedAt,
	)
	if err != nil {
		return &usecase.DependencyError{Op: "audit.append", Err: err}
	}

	return nil
}
