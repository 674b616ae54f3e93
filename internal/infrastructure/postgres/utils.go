package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// canonicalUUID normaliza id a la forma que produce id::text en Postgres. ok=false si no
// es uuid: el cast fallaría y, dentro de una transacción, la dejaría abortada. Formas como
// urn:uuid: que uuid.Parse acepta y Postgres no, también se reescriben aquí.
func canonicalUUID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// canonicalUUIDs filtra y normaliza ids; los que no son uuid no pueden coincidir con ninguna fila.
func canonicalUUIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if c, ok := canonicalUUID(id); ok {
			out = append(out, c)
		}
	}
	return out
}
