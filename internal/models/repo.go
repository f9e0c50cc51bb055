package models

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors the handlers map to client statuses. Anything else coming
// out of a repository is an opaque 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
// Email uniqueness is enforced at the store, not re-validated above the INSERT.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
