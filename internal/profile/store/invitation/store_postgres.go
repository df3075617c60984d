package invitation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/sentinel"
	txcontext "userhub/pkg/platform/tx"
	"userhub/pkg/requestcontext"
)

// PostgresStore persists profile invitations in the profile_invitation table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) querier(ctx context.Context) dbQuerier {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const columns = `id, profile_id, profile_type, access_level, email,
	expires, claimed, created_timestamp, claimed_timestamp`

// Save inserts or replaces an invitation. A fresh row gets its creation
// timestamp and claim window stamped here.
func (s *PostgresStore) Save(ctx context.Context, invitation *models.ProfileInvitation) error {
	_, err := s.FindByID(ctx, invitation.ID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		now := requestcontext.Now(ctx)
		invitation.CreatedTimestamp = now
		invitation.Expires = now.Add(models.InvitationLifetime)
	case err != nil:
		return err
	}

	query := `
		INSERT INTO profile_invitation (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			expires = EXCLUDED.expires,
			claimed = EXCLUDED.claimed,
			claimed_timestamp = EXCLUDED.claimed_timestamp
	`
	_, err = s.querier(ctx).ExecContext(ctx, query,
		invitation.ID.String(), invitation.ProfileID.String(),
		invitation.Type.String(), string(invitation.AccessLevel),
		invitation.Email,
		invitation.Expires, invitation.Claimed,
		invitation.CreatedTimestamp, nullTime(invitation.ClaimedTimestamp),
	)
	if err != nil {
		return fmt.Errorf("save profile invitation: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, invitationID id.InvitationID) (*models.ProfileInvitation, error) {
	query := `SELECT ` + columns + ` FROM profile_invitation WHERE id = $1`
	row := s.querier(ctx).QueryRowContext(ctx, query, invitationID.String())
	return s.findOne(row)
}

// FindActiveByEmailAndProfile returns an unexpired invitation for the pair,
// claimed or not.
func (s *PostgresStore) FindActiveByEmailAndProfile(ctx context.Context, email string, profileID id.ProfileID) (*models.ProfileInvitation, error) {
	query := `SELECT ` + columns + ` FROM profile_invitation
		WHERE lower(email) = lower($1) AND profile_id = $2 AND expires > $3
		ORDER BY created_timestamp DESC
		LIMIT 1`
	row := s.querier(ctx).QueryRowContext(ctx, query,
		email, profileID.String(), requestcontext.Now(ctx))
	return s.findOne(row)
}

func (s *PostgresStore) findOne(row *sql.Row) (*models.ProfileInvitation, error) {
	inv, err := scanInvitation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find profile invitation: %w", err)
	}
	return inv, nil
}

func (s *PostgresStore) Delete(ctx context.Context, invitationID id.InvitationID) error {
	result, err := s.querier(ctx).ExecContext(ctx,
		`DELETE FROM profile_invitation WHERE id = $1`, invitationID.String())
	if err != nil {
		return fmt.Errorf("delete profile invitation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile invitation: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

var sortColumns = map[string]string{
	"email":            "email",
	"expires":          "expires",
	"accessLevel":      "access_level",
	"createdTimestamp": "created_timestamp",
}

func (s *PostgresStore) Search(ctx context.Context, filters models.InvitationFilters) (models.Page[*models.ProfileInvitation], error) {
	args := []any{filters.ProfileID.String()}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where := []string{"profile_id = $1"}
	if filters.Type != "" {
		where = append(where, "profile_type = "+arg(filters.Type.String()))
	}
	if filters.AccessLevel != "" {
		where = append(where, "access_level = "+arg(string(filters.AccessLevel)))
	}
	if filters.Email != "" {
		if filters.ExactEmailMatch {
			where = append(where, "lower(email) = lower("+arg(filters.Email)+")")
		} else {
			where = append(where, "email ILIKE '%' || "+arg(filters.Email)+" || '%'")
		}
	}
	clause := " WHERE " + strings.Join(where, " AND ")

	page := filters.Page.Normalize()
	out := models.Page[*models.ProfileInvitation]{
		Items:      []*models.ProfileInvitation{},
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}

	countQuery := `SELECT count(*) FROM profile_invitation` + clause
	if err := s.querier(ctx).QueryRowContext(ctx, countQuery, args...).Scan(&out.TotalCount); err != nil {
		return out, fmt.Errorf("count profile invitations: %w", err)
	}

	orderBy, ok := sortColumns[page.SortBy]
	if !ok {
		orderBy = "created_timestamp"
	}

	query := `SELECT ` + columns + ` FROM profile_invitation` + clause +
		fmt.Sprintf(" ORDER BY %s %s LIMIT %s OFFSET %s",
			orderBy, page.SortOrder, arg(page.PageSize), arg(page.Offset()))

	rows, err := s.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return out, fmt.Errorf("search profile invitations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		inv, err := scanInvitation(rows.Scan)
		if err != nil {
			return out, fmt.Errorf("scan profile invitation: %w", err)
		}
		out.Items = append(out.Items, inv)
	}
	return out, rows.Err()
}

func scanInvitation(scan func(dest ...any) error) (*models.ProfileInvitation, error) {
	var (
		inv               models.ProfileInvitation
		rawID, rawProfile string
		rawType, rawLevel string
		claimedAt         sql.NullTime
	)
	err := scan(&rawID, &rawProfile, &rawType, &rawLevel, &inv.Email,
		&inv.Expires, &inv.Claimed, &inv.CreatedTimestamp, &claimedAt)
	if err != nil {
		return nil, err
	}

	if inv.ID, err = id.ParseInvitationID(rawID); err != nil {
		return nil, err
	}
	if inv.ProfileID, err = id.ParseProfileID(rawProfile); err != nil {
		return nil, err
	}
	if inv.Type, err = models.ParseProfileType(rawType); err != nil {
		return nil, err
	}
	if inv.AccessLevel, err = models.ParseAccessLevel(rawLevel); err != nil {
		return nil, err
	}
	if claimedAt.Valid {
		inv.ClaimedTimestamp = &claimedAt.Time
	}
	return &inv, nil
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
