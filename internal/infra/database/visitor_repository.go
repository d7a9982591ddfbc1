package database

import (
	"context"
	"database/sql"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type VisitorRepository struct {
	DB *sql.DB
}

func NewVisitorRepository(db *sql.DB) *VisitorRepository {
	return &VisitorRepository{DB: db}
}

func (r *VisitorRepository) Create(ctx context.Context, v *entity.VisitorRecord) error {
	query := `
		INSERT INTO visitor_records (id, contact_id, first_visit, saved, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		v.ID,
		v.ContactID,
		v.FirstVisit,
		v.Saved,
		v.Notes,
		v.CreatedAt,
	)
	if err != nil {
		// The unique index on contact_id is the authoritative 1:1 guard.
		if isUniqueViolation(err) {
			return &usecase.DuplicateRecordError{Kind: "visitor", ContactID: v.ContactID}
		}
		return &usecase.DependencyError{Op: "visitors.create", Err: err}
	}

	return nil
}

func (r *VisitorRepository) FindByContactID(ctx context.Context, contactID string) (*entity.VisitorRecord, error) {
	query := `
		SELECT id, contact_id, first_visit, saved, notes, created_at
		FROM visitor_records
		WHERE contact_id = $1
	`

	var v entity.VisitorRecord
	err := r.DB.QueryRowContext(ctx, query, contactID).Scan(
		&v.ID,
		&v.ContactID,
		&v.FirstVisit,
		&v.Saved,
		&v.Notes,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrDependency(err, "visitors.find", "visitor record for contact", contactID)
	}

	return &v, nil
}

func (r *VisitorRepository) ExistsForContact(ctx context.Context, contactID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM visitor_records WHERE contact_id = $1)`, contactID,
	).Scan(&exists)
	if err != nil {
		return false, &usecase.DependencyError{Op: "visitors.exists", Err: err}
	}

	return exists, nil
}

func (r *VisitorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM visitor_records WHERE id = $1`, id)
	if err != nil {
		return &usecase.DependencyError{Op: "visitors.delete", Err: err}
	}

	return requireRow(res, "visitors.delete", "visitor record", id)
}
