package database

import (
	"context"
	"database/sql"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type MemberRepository struct {
	DB *sql.DB
}

func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) Create(ctx context.Context, m *entity.MemberRecord) error {
	query := `
		INSERT INTO member_records (id, contact_id, joined_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID,
		m.ContactID,
		m.JoinedAt,
		m.Notes,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &usecase.DuplicateRecordError{Kind: "member", ContactID: m.ContactID}
		}
		return &usecase.DependencyError{Op: "members.create", Err: err}
	}

	return nil
}

func (r *MemberRepository) FindByContactID(ctx context.Context, contactID string) (*entity.MemberRecord, error) {
	query := `
		SELECT id, contact_id, joined_at, notes, created_at
		FROM member_records
		WHERE contact_id = $1
	`

	var m entity.MemberRecord
	err := r.DB.QueryRowContext(ctx, query, contactID).Scan(
		&m.ID,
		&m.ContactID,
		&m.JoinedAt,
		&m.Notes,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrDependency(err, "members.find", "member record for contact", contactID)
	}

	return &m, nil
}

func (r *MemberRepository) ExistsForContact(ctx context.Context, contactID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM member_records WHERE contact_id = $1)`, contactID,
	).Scan(&exists)
	if err != nil {
		return false, &usecase.DependencyError{Op: "members.exists", Err: err}
	}

	return exists, nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM member_records WHERE id = $1`, id)
	if err != nil {
		return &usecase.DependencyError{Op: "members.delete", Err: err}
	}

	return requireRow(res, "members.delete", "member record", id)
}
