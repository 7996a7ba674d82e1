package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile inserts a fully populated profile with a unique site slug.
// Returns the filled domain.Profile.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := domain.Profile{
		ID:        uuid.New(),
		Site:      "site-" + suffix,
		SiteName:  "Site " + suffix,
		OrgType:   "CafeOrCoffeeShop",
		OrgName:   "Cafe " + suffix,
		URL:       "https://site-" + suffix + ".example",
		LogoURL:   "https://site-" + suffix + ".example/logo.png",
		Telephone: "+1-202-555-0147",
		Address: domain.Address{
			Street:     "1 Harbor Way",
			Locality:   "Portland",
			Region:     "ME",
			PostalCode: "04101",
			Country:    "US",
		},
		Geo: &domain.GeoPoint{Latitude: 43.6591, Longitude: -70.2568},
		Hours: []domain.HoursBlock{
			{
				Days:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				Opens:  domain.TimeOfDay{Hour: 7},
				Closes: domain.TimeOfDay{Hour: 18},
			},
		},
		Actions: []domain.ActionBlock{
			{
				ActionType: "ReserveAction",
				Target:     "https://site-" + suffix + ".example/book",
				Language:   "en-US",
				ResultType: "FoodEstablishmentReservation",
				ResultName: "Book a table",
			},
		},
		SearchText: "site " + suffix + " cafe " + suffix,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	addressJSON := mustMarshal(t, profile.Address)
	geoJSON := mustMarshal(t, profile.Geo)
	hoursJSON := mustMarshal(t, profile.Hours)
	actionsJSON := mustMarshal(t, profile.Actions)

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, site, site_name, org_type, org_name, url, logo_url, image_url,
		                       telephone, address, geo, hours, actions, extra_json, search_text,
		                       created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		profile.ID, profile.Site, profile.SiteName, profile.OrgType, profile.OrgName,
		profile.URL, profile.LogoURL, profile.ImageURL, profile.Telephone,
		addressJSON, geoJSON, hoursJSON, actionsJSON, profile.ExtraJSON, profile.SearchText,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return profile
}

// SeedMinimalProfile inserts a profile carrying only the required fields.
func SeedMinimalProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := domain.Profile{
		ID:        uuid.New(),
		Site:      "minimal-" + suffix,
		SiteName:  "Minimal " + suffix,
		OrgType:   "Organization",
		OrgName:   "Minimal Org " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, site, site_name, org_type, org_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.ID, profile.Site, profile.SiteName, profile.OrgType, profile.OrgName,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMinimalProfile insert: %v", err)
	}

	return profile
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("testhelper: marshal seed value: %v", err)
	}
	return b
}
