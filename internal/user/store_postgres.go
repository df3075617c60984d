package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	id "userhub/pkg/domain"
	"userhub/pkg/platform/sentinel"
	txcontext "userhub/pkg/platform/tx"
)

// PostgresStore backs the directory with the app_user table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) querier(ctx context.Context) dbQuerier {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const userColumns = `id, email, first_name, middle_name, last_name, deleted`

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM app_user WHERE id = $1 AND NOT deleted`
	row := s.querier(ctx).QueryRowContext(ctx, query, userID.String())
	u, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) SearchByEmail(ctx context.Context, email string) ([]*User, error) {
	query := `SELECT ` + userColumns + ` FROM app_user
		WHERE email ILIKE '%' || $1 || '%' AND NOT deleted`
	return s.queryUsers(ctx, query, email)
}

func (s *PostgresStore) SearchByName(ctx context.Context, name string) ([]*User, error) {
	query := `SELECT ` + userColumns + ` FROM app_user
		WHERE concat_ws(' ', first_name, middle_name, last_name) ILIKE '%' || $1 || '%'
		AND NOT deleted`
	return s.queryUsers(ctx, query, name)
}

func (s *PostgresStore) queryUsers(ctx context.Context, query string, args ...any) ([]*User, error) {
	rows, err := s.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	var out []*User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(scan func(dest ...any) error) (*User, error) {
	var (
		u      User
		rawID  string
		first  sql.NullString
		middle sql.NullString
		last   sql.NullString
	)
	if err := scan(&rawID, &u.Email, &first, &middle, &last, &u.Deleted); err != nil {
		return nil, err
	}
	userID, err := id.ParseUserID(rawID)
	if err != nil {
		return nil, err
	}
	u.ID = userID
	u.FirstName = first.String
	u.MiddleName = middle.String
	u.LastName = last.String
	return &u, nil
}
