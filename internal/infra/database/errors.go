package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/calebms7/shepherd-backend/internal/usecase"
)

const uniqueViolation = "23505"

// isUniqueViolation reports whether Postgres rejected the statement on a
// unique index. The store constraint is the authoritative guard for 1:1
// records; the pre-insert checks in the use cases are advisory only.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func notFoundOrDependency(err error, op, kind, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &usecase.NotFoundError{Kind: kind, ID: id}
	}
	return &usecase.DependencyError{Op: op, Err: err}
}
