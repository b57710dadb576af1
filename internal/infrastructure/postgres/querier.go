package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae la superficie mínima de pgx que usan los repos, de modo
// que una operación funciona igual sobre una conexión prestada del pool o
// sobre una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation detecta SQLSTATE 23505 (unique_violation). Se usa para
// traducir choques de username a domain.ErrDuplicate y para que recargar la
// semilla sea idempotente. El fallback sobre el texto cubre errores que
// llegan envueltos sin el *pgconn.PgError original.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}
