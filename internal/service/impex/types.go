package impex

import (
	"time"

	"github.com/google/uuid"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

// ExportVersion is the current export document format.
const ExportVersion = 1

// ProfileRecord is the wire form of a profile in an export document.
type ProfileRecord struct {
	ID         uuid.UUID            `json:"id"`
	Site       string               `json:"site"`
	SiteName   string               `json:"site_name"`
	OrgType    string               `json:"org_type"`
	OrgName    string               `json:"org_name"`
	URL        string               `json:"url,omitempty"`
	LogoURL    string               `json:"logo_url,omitempty"`
	ImageURL   string               `json:"image_url,omitempty"`
	Telephone  string               `json:"telephone,omitempty"`
	Address    domain.Address       `json:"address"`
	Geo        *domain.GeoPoint     `json:"geo,omitempty"`
	Hours      []domain.HoursBlock  `json:"hours"`
	Actions    []domain.ActionBlock `json:"actions"`
	ExtraJSON  string               `json:"extra_json,omitempty"`
	SearchText string               `json:"search_text,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// recordFromProfile converts a stored profile into its wire form.
func recordFromProfile(p domain.Profile) ProfileRecord {
	return ProfileRecord{
		ID:         p.ID,
		Site:       p.Site,
		SiteName:   p.SiteName,
		OrgType:    p.OrgType,
		OrgName:    p.OrgName,
		URL:        p.URL,
		LogoURL:    p.LogoURL,
		ImageURL:   p.ImageURL,
		Telephone:  p.Telephone,
		Address:    p.Address,
		Geo:        p.Geo,
		Hours:      p.Hours,
		Actions:    p.Actions,
		ExtraJSON:  p.ExtraJSON,
		SearchText: p.SearchText,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// toDomain converts a wire record back into a domain profile.
func (r ProfileRecord) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:         r.ID,
		Site:       domain.NormalizeSite(r.Site),
		SiteName:   r.SiteName,
		OrgType:    r.OrgType,
		OrgName:    r.OrgName,
		URL:        r.URL,
		LogoURL:    r.LogoURL,
		ImageURL:   r.ImageURL,
		Telephone:  r.Telephone,
		Address:    r.Address,
		Geo:        r.Geo,
		Hours:      r.Hours,
		Actions:    r.Actions,
		ExtraJSON:  r.ExtraJSON,
		SearchText: r.SearchText,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ExportEntry pairs a profile with the fingerprint of its rendered document.
type ExportEntry struct {
	Profile     ProfileRecord `json:"profile"`
	Fingerprint string        `json:"fingerprint"`
}

// ExportDoc is a complete profile backup.
type ExportDoc struct {
	Version    int           `json:"version"`
	ExportedAt time.Time     `json:"exported_at"`
	RunID      uuid.UUID     `json:"run_id"`
	Actor      string        `json:"actor,omitempty"`
	Profiles   []ExportEntry `json:"profiles"`
}

// ImportError describes one entry that was not imported.
type ImportError struct {
	Site   string `json:"site"`
	Reason string `json:"reason"`
}

// ImportReport summarizes an import run. Skipped counts entries rejected for
// data problems; each one has a matching entry in Errors.
type ImportReport struct {
	Total   int           `json:"total"`
	Created int           `json:"created"`
	Updated int           `json:"updated"`
	Skipped int           `json:"skipped"`
	Errors  []ImportError `json:"errors,omitempty"`
}
