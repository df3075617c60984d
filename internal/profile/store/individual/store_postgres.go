package individual

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/sentinel"
	txcontext "userhub/pkg/platform/tx"
	"userhub/pkg/requestcontext"
)

// PostgresStore persists individual profiles in the individual_profile table.
// Addresses are embedded as JSONB documents owned by the profile row.
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

const columns = `id, ssn, first_name, middle_name, last_name, email, phone_number,
	primary_address, mailing_address,
	created_by, last_updated_by, created_timestamp, last_updated_timestamp`

func (s *PostgresStore) Save(ctx context.Context, profile *models.IndividualProfile) error {
	actor, now := requestcontext.Actor(ctx), requestcontext.Now(ctx)

	existing, err := s.FindByID(ctx, profile.ID)
	switch {
	case err == nil:
		profile.Tracking = existing.Tracking
		profile.StampUpdate(actor, now)
	case errors.Is(err, sentinel.ErrNotFound):
		profile.StampCreate(actor, now)
	default:
		return err
	}

	primary, err := marshalAddress(profile.PrimaryAddress)
	if err != nil {
		return err
	}
	mailing, err := marshalAddress(profile.MailingAddress)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO individual_profile (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			ssn = EXCLUDED.ssn,
			first_name = EXCLUDED.first_name,
			middle_name = EXCLUDED.middle_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number,
			primary_address = EXCLUDED.primary_address,
			mailing_address = EXCLUDED.mailing_address,
			last_updated_by = EXCLUDED.last_updated_by,
			last_updated_timestamp = EXCLUDED.last_updated_timestamp
	`
	_, err = s.querier(ctx).ExecContext(ctx, query,
		profile.ID.String(), profile.SSN,
		nullString(profile.FirstName), nullString(profile.MiddleName), nullString(profile.LastName),
		nullString(profile.Email), nullString(profile.PhoneNumber),
		primary, mailing,
		profile.CreatedBy, profile.LastUpdatedBy,
		profile.CreatedTimestamp, profile.LastUpdatedTimestamp,
	)
	if err != nil {
		return fmt.Errorf("save individual profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, profileID id.ProfileID) (*models.IndividualProfile, error) {
	query := `SELECT ` + columns + ` FROM individual_profile WHERE id = $1`
	row := s.querier(ctx).QueryRowContext(ctx, query, profileID.String())
	p, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find individual profile: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Delete(ctx context.Context, profileID id.ProfileID) error {
	result, err := s.querier(ctx).ExecContext(ctx,
		`DELETE FROM individual_profile WHERE id = $1`, profileID.String())
	if err != nil {
		return fmt.Errorf("delete individual profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete individual profile: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// sortColumns whitelists external sort keys against the table's columns.
var sortColumns = map[string]string{
	"ssn":              "ssn",
	"email":            "email",
	"firstName":        "first_name",
	"lastName":         "last_name",
	"createdTimestamp": "created_timestamp",
}

func (s *PostgresStore) Search(ctx context.Context, filters models.IndividualFilters) (models.Page[*models.IndividualProfile], error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.SSN != "" {
		where = append(where, "ssn = "+arg(filters.SSN))
	}
	if filters.Email != "" {
		where = append(where, "email ILIKE '%' || "+arg(filters.Email)+" || '%'")
	}
	if filters.Name != "" {
		where = append(where,
			"concat_ws(' ', first_name, middle_name, last_name) ILIKE '%' || "+arg(filters.Name)+" || '%'")
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	page := filters.Page.Normalize()
	out := models.Page[*models.IndividualProfile]{
		Items:      []*models.IndividualProfile{},
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}

	countQuery := `SELECT count(*) FROM individual_profile` + clause
	if err := s.querier(ctx).QueryRowContext(ctx, countQuery, args...).Scan(&out.TotalCount); err != nil {
		return out, fmt.Errorf("count individual profiles: %w", err)
	}

	orderBy, ok := sortColumns[page.SortBy]
	if !ok {
		orderBy = "created_timestamp"
	}

	query := `SELECT ` + columns + ` FROM individual_profile` + clause +
		fmt.Sprintf(" ORDER BY %s %s LIMIT %s OFFSET %s",
			orderBy, page.SortOrder, arg(page.PageSize), arg(page.Offset()))

	rows, err := s.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return out, fmt.Errorf("search individual profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return out, fmt.Errorf("scan individual profile: %w", err)
		}
		out.Items = append(out.Items, p)
	}
	return out, rows.Err()
}

func scanProfile(scan func(dest ...any) error) (*models.IndividualProfile, error) {
	var (
		p                IndividualRow
		rawID            string
		first, middle    sql.NullString
		last, email      sql.NullString
		phone            sql.NullString
		primary, mailing []byte
	)
	err := scan(&rawID, &p.SSN, &first, &middle, &last, &email, &phone,
		&primary, &mailing,
		&p.CreatedBy, &p.LastUpdatedBy, &p.CreatedTimestamp, &p.LastUpdatedTimestamp)
	if err != nil {
		return nil, err
	}

	profileID, err := id.ParseProfileID(rawID)
	if err != nil {
		return nil, err
	}

	out := &models.IndividualProfile{
		ID:          profileID,
		SSN:         p.SSN,
		FirstName:   first.String,
		MiddleName:  middle.String,
		LastName:    last.String,
		Email:       email.String,
		PhoneNumber: phone.String,
		Tracking:    p.Tracking,
	}
	if out.PrimaryAddress, err = unmarshalAddress(primary); err != nil {
		return nil, err
	}
	if out.MailingAddress, err = unmarshalAddress(mailing); err != nil {
		return nil, err
	}
	return out, nil
}

// IndividualRow holds the scan targets that map one-to-one onto model fields.
type IndividualRow struct {
	SSN string
	models.Tracking
}

func marshalAddress(a *models.Address) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal address: %w", err)
	}
	return raw, nil
}

func unmarshalAddress(raw []byte) (*models.Address, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var a models.Address
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("unmarshal address: %w", err)
	}
	return &a, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
