// Package profile implements the profile repository using PostgreSQL.
// Authored blocks (address, geo, hours, actions) are stored as JSONB
// documents; the repository owns their encoding.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ormondry/seoforge-backend/internal/adapter/postgres"
	"github.com/ormondry/seoforge-backend/internal/domain"
)

// qb builds queries with PostgreSQL-style $N placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var profileColumns = []string{
	"id", "site", "site_name", "org_type", "org_name",
	"url", "logo_url", "image_url", "telephone",
	"address", "geo", "hours", "actions",
	"extra_json", "search_text", "created_at", "updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetBySite returns the profile for a site slug, or domain.ErrNotFound.
func (r *Repo) GetBySite(ctx context.Context, site string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"site": site}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("profile get_by_site: build query: %w", err)
	}

	p, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "profile", site)
	}
	return p, nil
}

// List returns all profiles ordered by site slug.
func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(profileColumns...).
		From("profiles").
		OrderBy("site ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("profile list: build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "profile", "list")
	}
	defer rows.Close()

	return scanProfiles(rows)
}

// Search returns profiles whose search text matches the query,
// case-insensitively, ordered by site slug and capped at limit.
func (r *Repo) Search(ctx context.Context, query string, limit int) ([]domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.ILike{"search_text": "%" + query + "%"}).
		OrderBy("site ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("profile search: build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "profile", query)
	}
	defer rows.Close()

	return scanProfiles(rows)
}

// Count returns the total number of profiles.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("COUNT(*)").From("profiles").ToSql()
	if err != nil {
		return 0, fmt.Errorf("profile count: build query: %w", err)
	}

	var count int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "profile", "count")
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new profile and returns the persisted domain.Profile.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	blocks, err := encodeBlocks(p)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.Site, err)
	}

	sql, args, err := qb.Insert("profiles").
		Columns(profileColumns...).
		Values(
			p.ID, p.Site, p.SiteName, p.OrgType, p.OrgName,
			p.URL, p.LogoURL, p.ImageURL, p.Telephone,
			blocks.address, blocks.geo, blocks.hours, blocks.actions,
			p.ExtraJSON, p.SearchText, p.CreatedAt, p.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("profile create: build query: %w", err)
	}

	created, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.Site)
	}
	return created, nil
}

// Update rewrites an existing profile by ID and returns the persisted row.
func (r *Repo) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	blocks, err := encodeBlocks(p)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.Site, err)
	}

	sql, args, err := qb.Update("profiles").
		Set("site", p.Site).
		Set("site_name", p.SiteName).
		Set("org_type", p.OrgType).
		Set("org_name", p.OrgName).
		Set("url", p.URL).
		Set("logo_url", p.LogoURL).
		Set("image_url", p.ImageURL).
		Set("telephone", p.Telephone).
		Set("address", blocks.address).
		Set("geo", blocks.geo).
		Set("hours", blocks.hours).
		Set("actions", blocks.actions).
		Set("extra_json", p.ExtraJSON).
		Set("search_text", p.SearchText).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("profile update: build query: %w", err)
	}

	updated, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.Site)
	}
	return updated, nil
}

// Delete removes the profile with the given ID. Returns domain.ErrNotFound
// if no such profile exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("profile delete: build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "profile", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "profile", id.String())
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row encoding and scanning
// ---------------------------------------------------------------------------

type encodedBlocks struct {
	address []byte
	geo     []byte // nil means SQL NULL
	hours   []byte
	actions []byte
}

func encodeBlocks(p *domain.Profile) (encodedBlocks, error) {
	var blocks encodedBlocks
	var err error

	if blocks.address, err = json.Marshal(p.Address); err != nil {
		return blocks, fmt.Errorf("encode address: %w", err)
	}

	if p.Geo != nil {
		if blocks.geo, err = json.Marshal(p.Geo); err != nil {
			return blocks, fmt.Errorf("encode geo: %w", err)
		}
	}

	hours := p.Hours
	if hours == nil {
		hours = []domain.HoursBlock{}
	}
	if blocks.hours, err = json.Marshal(hours); err != nil {
		return blocks, fmt.Errorf("encode hours: %w", err)
	}

	actions := p.Actions
	if actions == nil {
		actions = []domain.ActionBlock{}
	}
	if blocks.actions, err = json.Marshal(actions); err != nil {
		return blocks, fmt.Errorf("encode actions: %w", err)
	}

	return blocks, nil
}

// scanProfile scans a single profile row, decoding the JSONB block columns.
func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p           domain.Profile
		addressJSON []byte
		geoJSON     []byte
		hoursJSON   []byte
		actionsJSON []byte
	)

	err := row.Scan(
		&p.ID, &p.Site, &p.SiteName, &p.OrgType, &p.OrgName,
		&p.URL, &p.LogoURL, &p.ImageURL, &p.Telephone,
		&addressJSON, &geoJSON, &hoursJSON, &actionsJSON,
		&p.ExtraJSON, &p.SearchText, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(addressJSON) > 0 {
		if err := json.Unmarshal(addressJSON, &p.Address); err != nil {
			return nil, fmt.Errorf("decode address: %w", err)
		}
	}
	if len(geoJSON) > 0 {
		// A jsonb null decodes into a nil pointer, same as SQL NULL.
		if err := json.Unmarshal(geoJSON, &p.Geo); err != nil {
			return nil, fmt.Errorf("decode geo: %w", err)
		}
	}
	if len(hoursJSON) > 0 {
		if err := json.Unmarshal(hoursJSON, &p.Hours); err != nil {
			return nil, fmt.Errorf("decode hours: %w", err)
		}
	}
	if len(actionsJSON) > 0 {
		if err := json.Unmarshal(actionsJSON, &p.Actions); err != nil {
			return nil, fmt.Errorf("decode actions: %w", err)
		}
	}

	if p.Hours == nil {
		p.Hours = []domain.HoursBlock{}
	}
	if p.Actions == nil {
		p.Actions = []domain.ActionBlock{}
	}

	return &p, nil
}

// scanProfiles scans multiple rows into domain.Profile slices.
// Returns an empty slice, not nil, when there are no rows.
func scanProfiles(rows pgx.Rows) ([]domain.Profile, error) {
	profiles := make([]domain.Profile, 0, 16)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}
