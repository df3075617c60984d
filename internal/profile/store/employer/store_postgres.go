package employer

import (
	"context"
	"database/sql"
	"encoding/json"
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

// PostgresStore persists employer profiles in the employer_profile table.
// Other names live in a text[] column; addresses are embedded JSONB.
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

const columns = `id, fein, legal_name, other_names, business_type, industry,
	summary_of_business, business_phone, email,
	mailing_address, location_address,
	created_by, last_updated_by, created_timestamp, last_updated_timestamp`

func (s *PostgresStore) Save(ctx context.Context, profile *models.EmployerProfile) error {
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

	mailing, err := marshalAddress(profile.MailingAddress)
	if err != nil {
		return err
	}
	location, err := marshalAddress(profile.LocationAddress)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO employer_profile (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			fein = EXCLUDED.fein,
			legal_name = EXCLUDED.legal_name,
			other_names = EXCLUDED.other_names,
			business_type = EXCLUDED.business_type,
			industry = EXCLUDED.industry,
			summary_of_business = EXCLUDED.summary_of_business,
			business_phone = EXCLUDED.business_phone,
			email = EXCLUDED.email,
			mailing_address = EXCLUDED.mailing_address,
			location_address = EXCLUDED.location_address,
			last_updated_by = EXCLUDED.last_updated_by,
			last_updated_timestamp = EXCLUDED.last_updated_timestamp
	`
	_, err = s.querier(ctx).ExecContext(ctx, query,
		profile.ID.String(), profile.FEIN, profile.LegalName,
		pq.Array(profile.OtherNames),
		nullString(profile.BusinessType), nullString(profile.Industry),
		nullString(profile.SummaryOfBusiness), nullString(profile.BusinessPhone),
		nullString(profile.Email),
		mailing, location,
		profile.CreatedBy, profile.LastUpdatedBy,
		profile.CreatedTimestamp, profile.LastUpdatedTimestamp,
	)
	if err != nil {
		return fmt.Errorf("save employer profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, profileID id.ProfileID) (*models.EmployerProfile, error) {
	query := `SELECT ` + columns + ` FROM employer_profile WHERE id = $1`
	row := s.querier(ctx).QueryRowContext(ctx, query, profileID.String())
	p, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find employer profile: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Delete(ctx context.Context, profileID id.ProfileID) error {
	result, err := s.querier(ctx).ExecContext(ctx,
		`DELETE FROM employer_profile WHERE id = $1`, profileID.String())
	if err != nil {
		return fmt.Errorf("delete employer profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete employer profile: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

var sortColumns = map[string]string{
	"fein":             "fein",
	"legalName":        "legal_name",
	"industry":         "industry",
	"createdTimestamp": "created_timestamp",
}

func (s *PostgresStore) Search(ctx context.Context, filters models.EmployerFilters) (models.Page[*models.EmployerProfile], error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.FEIN != "" {
		where = append(where, "fein = "+arg(filters.FEIN))
	}
	if filters.Name != "" {
		p := arg(filters.Name)
		where = append(where, "(legal_name ILIKE '%' || "+p+" || '%'"+
			" OR EXISTS (SELECT 1 FROM unnest(other_names) AS other WHERE other ILIKE '%' || "+p+" || '%'))")
	}
	if filters.BusinessType != "" {
		where = append(where, "business_type ILIKE '%' || "+arg(filters.BusinessType)+" || '%'")
	}
	if filters.Industry != "" {
		where = append(where, "industry ILIKE '%' || "+arg(filters.Industry)+" || '%'")
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	page := filters.Page.Normalize()
	out := models.Page[*models.EmployerProfile]{
		Items:      []*models.EmployerProfile{},
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}

	countQuery := `SELECT count(*) FROM employer_profile` + clause
	if err := s.querier(ctx).QueryRowContext(ctx, countQuery, args...).Scan(&out.TotalCount); err != nil {
		return out, fmt.Errorf("count employer profiles: %w", err)
	}

	orderBy, ok := sortColumns[page.SortBy]
	if !ok {
		orderBy = "created_timestamp"
	}

	query := `SELECT ` + columns + ` FROM employer_profile` + clause +
		fmt.Sprintf(" ORDER BY %s %s LIMIT %s OFFSET %s",
			orderBy, page.SortOrder, arg(page.PageSize), arg(page.Offset()))

	rows, err := s.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return out, fmt.Errorf("search employer profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return out, fmt.Errorf("scan employer profile: %w", err)
		}
		out.Items = append(out.Items, p)
	}
	return out, rows.Err()
}

func scanProfile(scan func(dest ...any) error) (*models.EmployerProfile, error) {
	var (
		p                 models.EmployerProfile
		rawID             string
		businessType      sql.NullString
		industry          sql.NullString
		summary           sql.NullString
		phone             sql.NullString
		email             sql.NullString
		mailing, location []byte
	)
	err := scan(&rawID, &p.FEIN, &p.LegalName, pq.Array(&p.OtherNames),
		&businessType, &industry, &summary, &phone, &email,
		&mailing, &location,
		&p.CreatedBy, &p.LastUpdatedBy, &p.CreatedTimestamp, &p.LastUpdatedTimestamp)
	if err != nil {
		return nil, err
	}

	profileID, err := id.ParseProfileID(rawID)
	if err != nil {
		return nil, err
	}
	p.ID = profileID
	p.BusinessType = businessType.String
	p.Industry = industry.String
	p.SummaryOfBusiness = summary.String
	p.BusinessPhone = phone.String
	p.Email = email.String

	if p.MailingAddress, err = unmarshalAddress(mailing); err != nil {
		return nil, err
	}
	if p.LocationAddress, err = unmarshalAddress(location); err != nil {
		return nil, err
	}
	return &p, nil
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
