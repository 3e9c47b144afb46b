package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation en el catálogo de errores de PostgreSQL
const pgUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único.
// Lo usan el alta de productos (id) y el registro de usuarios (username).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
