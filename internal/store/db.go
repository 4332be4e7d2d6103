package store

import (
	"errors"

	"preorder-server/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrDuplicateFileHash is returned when a receipt upload collides with the
	// unique partial index on file_hash (DUPLICATE audit rows are excluded
	// from it). The index is the correctness backstop for concurrent uploads
	// of the same file.
	ErrDuplicateFileHash = errors.New("duplicate file hash")
)

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, err
	}
	return Store{db: db, logger: logger}, nil
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}
