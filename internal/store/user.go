package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// userColumns contains all columns for SELECT queries
const userColumns = `id, email, first_name, last_name, created_at, updated_at`

const sqlCreateUser = `
INSERT INTO users (email, first_name, last_name)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET updated_at = CURRENT_TIMESTAMP
RETURNING ` + userColumns

// UpsertUserByEmail creates a user on first contact or returns the existing
// record for the email
func (s *Store) UpsertUserByEmail(ctx context.Context, email string, firstName, lastName *string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser, email, firstName, lastName)
	if err != nil {
		return User{}, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
`

// GetUserByEmail retrieves a user by email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
