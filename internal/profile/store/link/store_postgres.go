package link

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/sentinel"
	txcontext "userhub/pkg/platform/tx"
	"userhub/pkg/requestcontext"
)

// uniqueViolation is the PostgreSQL error code raised by the unique
// (profile_id, user_id) constraint under concurrent inserts.
const uniqueViolation = "23505"

// PostgresStore persists profile links in the profile_link table.
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

const columns = `id, profile_id, user_id, profile_type, access_level,
	created_by, last_updated_by, created_timestamp, last_updated_timestamp`

func (s *PostgresStore) Save(ctx context.Context, link *models.ProfileLink) error {
	actor, now := requestcontext.Actor(ctx), requestcontext.Now(ctx)

	existing, err := s.FindByID(ctx, link.ID)
	switch {
	case err == nil:
		link.Tracking = existing.Tracking
		link.StampUpdate(actor, now)
	case errors.Is(err, sentinel.ErrNotFound):
		link.StampCreate(actor, now)
	default:
		return err
	}

	query := `
		INSERT INTO profile_link (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			access_level = EXCLUDED.access_level,
			last_updated_by = EXCLUDED.last_updated_by,
			last_updated_timestamp = EXCLUDED.last_updated_timestamp
	`
	_, err = s.querier(ctx).ExecContext(ctx, query,
		link.ID.String(), link.ProfileID.String(), link.UserID.String(),
		link.ProfileType.String(), string(link.AccessLevel),
		link.CreatedBy, link.LastUpdatedBy,
		link.CreatedTimestamp, link.LastUpdatedTimestamp,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("save profile link: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, linkID id.LinkID) (*models.ProfileLink, error) {
	query := `SELECT ` + columns + ` FROM profile_link WHERE id = $1`
	row := s.querier(ctx).QueryRowContext(ctx, query, linkID.String())
	return s.findOne(row)
}

func (s *PostgresStore) FindByProfileAndUser(ctx context.Context, profileID id.ProfileID, userID id.UserID) (*models.ProfileLink, error) {
	query := `SELECT ` + columns + ` FROM profile_link WHERE profile_id = $1 AND user_id = $2`
	row := s.querier(ctx).QueryRowContext(ctx, query, profileID.String(), userID.String())
	return s.findOne(row)
}

func (s *PostgresStore) findOne(row *sql.Row) (*models.ProfileLink, error) {
	l, err := scanLink(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find profile link: %w", err)
	}
	return l, nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.ProfileLink, error) {
	query := `SELECT ` + columns + ` FROM profile_link
		WHERE user_id = $1 ORDER BY created_timestamp`
	rows, err := s.querier(ctx).QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list profile links: %w", err)
	}
	defer rows.Close()

	var out []*models.ProfileLink
	for rows.Next() {
		l, err := scanLink(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan profile link: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Delete(ctx context.Context, linkID id.LinkID) error {
	result, err := s.querier(ctx).ExecContext(ctx,
		`DELETE FROM profile_link WHERE id = $1`, linkID.String())
	if err != nil {
		return fmt.Errorf("delete profile link: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile link: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

var sortColumns = map[string]string{
	"accessLevel":      "access_level",
	"createdTimestamp": "created_timestamp",
}

func (s *PostgresStore) Search(ctx context.Context, filters models.LinkFilters) (models.Page[*models.ProfileLink], error) {
	args := []any{filters.ProfileID.String()}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where := []string{"profile_id = $1"}
	if filters.HideAgencyReadonly {
		where = append(where, "access_level <> "+arg(string(models.AccessLevelAgencyReadonly)))
	}
	if filters.UserIDs != nil {
		ids := make([]string, 0, len(filters.UserIDs))
		for _, userID := range filters.UserIDs {
			ids = append(ids, userID.String())
		}
		where = append(where, "user_id = ANY("+arg(pq.Array(ids))+")")
	}
	clause := " WHERE " + strings.Join(where, " AND ")

	page := filters.Page.Normalize()
	out := models.Page[*models.ProfileLink]{
		Items:      []*models.ProfileLink{},
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}

	countQuery := `SELECT count(*) FROM profile_link` + clause
	if err := s.querier(ctx).QueryRowContext(ctx, countQuery, args...).Scan(&out.TotalCount); err != nil {
		return out, fmt.Errorf("count profile links: %w", err)
	}

	orderBy, ok := sortColumns[page.SortBy]
	if !ok {
		orderBy = "created_timestamp"
	}

	query := `SELECT ` + columns + ` FROM profile_link` + clause +
		fmt.Sprintf(" ORDER BY %s %s LIMIT %s OFFSET %s",
			orderBy, page.SortOrder, arg(page.PageSize), arg(page.Offset()))

	rows, err := s.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return out, fmt.Errorf("search profile links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLink(rows.Scan)
		if err != nil {
			return out, fmt.Errorf("scan profile link: %w", err)
		}
		out.Items = append(out.Items, l)
	}
	return out, rows.Err()
}

func scanLink(scan func(dest ...any) error) (*models.ProfileLink, error) {
	var (
		l                          models.ProfileLink
		rawID, rawProfile, rawUser string
		rawType, rawLevel          string
	)
	err := scan(&rawID, &rawProfile, &rawUser, &rawType, &rawLevel,
		&l.CreatedBy, &l.LastUpdatedBy, &l.CreatedTimestamp, &l.LastUpdatedTimestamp)
	if err != nil {
		return nil, err
	}

	if l.ID, err = id.ParseLinkID(rawID); err != nil {
		return nil, err
	}
	if l.ProfileID, err = id.ParseProfileID(rawProfile); err != nil {
		return nil, err
	}
	if l.UserID, err = id.ParseUserID(rawUser); err != nil {
		return nil, err
	}
	if l.ProfileType, err = models.ParseProfileType(rawType); err != nil {
		return nil, err
	}
	if l.AccessLevel, err = models.ParseAccessLevel(rawLevel); err != nil {
		return nil, err
	}
	return &l, nil
}
