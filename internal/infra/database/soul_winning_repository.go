package database

import (
	"context"
	"database/sql"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type SoulWinningRepository struct {
	DB *sql.DB
}

func NewSoulWinningRepository(db *sql.DB) *SoulWinningRepository {
	return &SoulWinningRepository{DB: db}
}

func (r *SoulWinningRepository) Create(ctx context.Context, rec *entity.SoulWinningRecord) error {
	query := `
		INSERT INTO soul_winning_records (id, contact_id, inviter_name, inviter_type, saved, converted_to, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.ContactID,
		rec.InviterName,
		nullString(rec.InviterType),
		rec.Saved,
		convertedTo(rec.ConvertedTo),
		rec.Notes,
		rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &usecase.DuplicateRecordError{Kind: "soul_winning", ContactID: rec.ContactID}
		}
		return &usecase.DependencyError{Op: "soul_winning.create", Err: err}
	}

	return nil
}

func (r *SoulWinningRepository) FindByID(ctx context.Context, id string) (*entity.SoulWinningRecord, error) {
	query := `
		SELECT id, contact_id, inviter_name, COALESCE(inviter_type, ''), saved, converted_to, notes, created_at
		FROM soul_winning_records
		WHERE id = $1
	`

	var rec entity.SoulWinningRecord
	var converted sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.ContactID,
		&rec.InviterName,
		&rec.InviterType,
		&rec.Saved,
		&converted,
		&rec.Notes,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrDependency(err, "soul_winning.find", "soul-winning record", id)
	}

	if converted.Valid {
		lc := entity.Lifecycle(converted.String)
		rec.ConvertedTo = &lc
	}

	return &rec, nil
}

func (r *SoulWinningRepository) ExistsForContact(ctx context.Context, contactID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM soul_winning_records WHERE contact_id = $1)`, contactID,
	).Scan(&exists)
	if err != nil {
		return false, &usecase.DependencyError{Op: "soul_winning.exists", Err: err}
	}

	return exists, nil
}

// SetConvertedTo records a successful conversion. Monotonic: never moves
// backwards from member.
func (r *SoulWinningRepository) SetConvertedTo(ctx context.Context, id string, target entity.Lifecycle) error {
	query := `
		UPDATE soul_winning_records
		SET converted_to = $2
		WHERE id = $1 AND (converted_to IS NULL OR converted_to != 'member')
	`

	res, err := r.DB.ExecContext(ctx, query, id, string(target))
	if err != nil {
		return &usecase.DependencyError{Op: "soul_winning.set_converted", Err: err}
	}

	return requireRow(res, "soul_winning.set_converted", "soul-winning record", id)
}

func (r *SoulWinningRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM soul_winning_records WHERE id = $1`, id)
	if err != nil {
		return &usecase.DependencyError{Op: "soul_winning.delete", Err: err}
	}

	return requireRow(res, "soul_winning.delete", "soul-winning record", id)
}

func convertedTo(lc *entity.Lifecycle) *string {
	if lc == nil {
		return nil
	}
	s := string(*lc)
	return &s
}
