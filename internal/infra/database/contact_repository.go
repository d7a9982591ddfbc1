package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, first_name, last_name, email, phone, birth_date, lifecycle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.FirstName,
		c.LastName,
		nullString(c.Email),
		nullString(c.Phone),
		nullString(c.BirthDate),
		string(c.Lifecycle),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &usecase.DuplicateRecordError{Kind: "contact", ContactID: c.ID}
		}
		return &usecase.DependencyError{Op: "contacts.create", Err: err}
	}

	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(birth_date, ''), lifecycle, created_at, updated_at
		FROM contacts
		WHERE id = $1
	`

	var c entity.Contact
	var lifecycle string

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.BirthDate,
		&lifecycle,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOrDependency(err, "contacts.find", "contact", id)
	}

	c.Lifecycle = entity.Lifecycle(lifecycle)
	return &c, nil
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	query := `
		UPDATE contacts
		SET first_name = $2, last_name = $3, email = $4, phone = $5, birth_date = $6, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.FirstName,
		c.LastName,
		nullString(c.Email),
		nullString(c.Phone),
		nullString(c.BirthDate),
	)
	if err != nil {
		return &usecase.DependencyError{Op: "contacts.update", Err: err}
	}

	return requireRow(res, "contacts.update", "contact", c.ID)
}

// UpdateLifecycle is the only write path for the lifecycle column.
func (r *ContactRepository) UpdateLifecycle(ctx context.Context, id string, lifecycle entity.Lifecycle) error {
	query := `UPDATE contacts SET lifecycle = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id, string(lifecycle))
	if err != nil {
		return &usecase.DependencyError{Op: "contacts.update_lifecycle", Err: err}
	}

	return requireRow(res, "contacts.update_lifecycle", "contact", id)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return &usecase.DependencyError{Op: "contacts.delete", Err: err}
	}

	return requireRow(res, "contacts.delete", "contact", id)
}

func (r *ContactRepository) HasDependents(ctx context.Context, id string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM visitor_records WHERE contact_id = $1)
		    OR EXISTS(SELECT 1 FROM member_records WHERE contact_id = $1)
		    OR EXISTS(SELECT 1 FROM soul_winning_records WHERE contact_id = $1)
		    OR EXISTS(SELECT 1 FROM follow_ups WHERE contact_id = $1)
	`

	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, &usecase.DependencyError{Op: "contacts.has_dependents", Err: err}
	}

	return exists, nil
}

// ListBirthdays returns contacts whose birth date falls on the given
// month/day. Used by the reminder worker.
func (r *ContactRepository) ListBirthdays(ctx context.Context, month time.Month, day int) ([]*entity.Contact, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(birth_date, ''), lifecycle, created_at, updated_at
		FROM contacts
		WHERE birth_date IS NOT NULL
		  AND EXTRACT(MONTH FROM birth_date::date) = $1
		  AND EXTRACT(DAY FROM birth_date::date) = $2
	`

	rows, err := r.DB.QueryContext(ctx, query, int(month), day)
	if err != nil {
		return nil, &usecase.DependencyError{Op: "contacts.list_birthdays", Err: err}
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		var lifecycle string
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.BirthDate, &lifecycle, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, &usecase.DependencyError{Op: "contacts.list_birthdays", Err: err}
		}
		c.Lifecycle = entity.Lifecycle(lifecycle)
		contacts = append(contacts, &c)
	}

	return contacts, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func requireRow(res sql.Result, op, kind, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return &usecase.DependencyError{Op: op, Err: err}
	}
	if affected == 0 {
		return &usecase.NotFoundError{Kind: kind, ID: id}
	}
	return nil
}
