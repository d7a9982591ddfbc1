package database

import (
	"context"
	"database/sql"

	"github.com/calebms7/shepherd-backend/internal/entity"
)

type TemplateRepository struct {
	DB *sql.DB
}

func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

func (r *TemplateRepository) FindByName(ctx context.Context, name string) (*entity.MessageTemplate, error) {
	query := `
		SELECT id, name, channel, COALESCE(subject, ''), body, updated_at
		FROM message_templates
		WHERE name = $1
	`

	var t entity.MessageTemplate
	err := r.DB.QueryRowContext(ctx, query, name).Scan(
		&t.ID,
		&t.Name,
		&t.Channel,
		&t.Subject,
		&t.Body,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOrDependency(err, "templates.find", "message template", name)
	}

	return &t, nil
}
