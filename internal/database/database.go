package database

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Postgres error codes the service classifies instead of passing
// through as server errors.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Open connects to Postgres and verifies the connection. The returned
// handle owns a connection pool; requests check connections out per
// transaction.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// IsForeignKeyViolation reports whether err is a referential
// integrity violation raised by the store.
func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == pgForeignKeyViolation
}

// IsUniqueViolation reports whether err is a unique constraint
// violation raised by the store.
func IsUniqueViolation(err error) bool {
	return pqCode(err) == pgUniqueViolation
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
