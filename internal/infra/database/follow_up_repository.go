package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type FollowUpRepository struct {
	DB *sql.DB
}

func NewFollowUpRepository(db *sql.DB) *FollowUpRepository {
	return &FollowUpRepository{DB: db}
}

func (r *FollowUpRepository) Create(ctx context.Context, f *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (id, contact_id, type, status, next_action_at, assigned_to, notes, completed_at, reminder_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		f.ID,
		f.ContactID,
		f.Type,
		string(f.Status),
		f.NextActionAt,
		f.AssignedTo,
		f.Notes,
		f.CompletedAt,
		f.ReminderSent,
		f.CreatedAt,
		f.UpdatedAt,
	)
	if err != nil {
		return &usecase.DependencyError{Op: "follow_ups.create", Err: err}
	}

	return nil
}

func (r *FollowUpRepository) FindByID(ctx context.Context, id string) (*entity.FollowUp, error) {
	query := `
		SELECT id, contact_id, type, status, next_action_at, assigned_to, notes, completed_at, reminder_sent, created_at, updated_at
		FROM follow_ups
		WHERE id = $1
	`

	f, err := scanFollowUp(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOrDependency(err, "follow_ups.find", "follow-up", id)
	}

	return f, nil
}

func (r *FollowUpRepository) Update(ctx context.Context, f *entity.FollowUp) error {
	query := `
		UPDATE follow_ups
		SET status = $2, next_action_at = $3, assigned_to = $4, notes = $5, completed_at = $6, reminder_sent = $7, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		f.ID,
		string(f.Status),
		f.NextActionAt,
		f.AssignedTo,
		f.Notes,
		f.CompletedAt,
		f.ReminderSent,
	)
	if err != nil {
		return &usecase.DependencyError{Op: "follow_ups.update", Err: err}
	}

	return requireRow(res, "follow_ups.update", "follow-up", f.ID)
}

func (r *FollowUpRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM follow_ups WHERE id = $1`, id)
	if err != nil {
		return &usecase.DependencyError{Op: "follow_ups.delete", Err: err}
	}

	return requireRow(res, "follow_ups.delete", "follow-up", id)
}

// ClaimDue atomically marks due pending follow-ups as reminded and returns
// them, so a reminder is sent at most once per task.
func (r *FollowUpRepository) ClaimDue(ctx context.Context, before time.Time) ([]*entity.FollowUp, error) {
	query := `
		UPDATE follow_ups
		SET reminder_sent = TRUE, updated_at = NOW()
		WHERE status = 'pending'
		  AND reminder_sent = FALSE
		  AND next_action_at <= $1
		RETURNING id, contact_id, type, status, next_action_at, assigned_to, notes, completed_at, reminder_sent, created_at, updated_at
	`

	rows, err := r.DB.QueryContext(ctx, query, before)
	if err != nil {
		return nil, &usecase.DependencyError{Op: "follow_ups.claim_due", Err: err}
	}
	defer rows.Close()

	var due []*entity.FollowUp
	for rows.Next() {
		f, err := scanFollowUp(rows)
		if err != nil {
			return nil, &usecase.DependencyError{Op: "follow_ups.claim_due", Err: err}
		}
		due = append(due, f)
	}

	return due, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFollowUp(row rowScanner) (*entity.FollowUp, error) {
	var f entity.FollowUp
	var status string
	var assignedTo sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&f.ID,
		&f.ContactID,
		&f.Type,
		&status,
		&f.NextActionAt,
		&assignedTo,
		&f.Notes,
		&completedAt,
		&f.ReminderSent,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.Status = entity.FollowUpStatus(status)
	if assignedTo.Valid {
		f.AssignedTo = &assignedTo.String
	}
	if completedAt.Valid {
		f.CompletedAt = &completedAt.Time
	}

	return &f, nil
}
