//go:build e2e

package e2e_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/ormondry/seoforge-backend/internal/adapter/cache"
	"github.com/ormondry/seoforge-backend/internal/adapter/postgres"
	profilerepo "github.com/ormondry/seoforge-backend/internal/adapter/postgres/profile"
	"github.com/ormondry/seoforge-backend/internal/adapter/postgres/testhelper"
	"github.com/ormondry/seoforge-backend/internal/domain"
	"github.com/ormondry/seoforge-backend/internal/service/impex"
	"github.com/ormondry/seoforge-backend/internal/service/snippet"
)

// ---------------------------------------------------------------------------
// testApp wires the full stack for E2E tests: repository, cache, services.
// ---------------------------------------------------------------------------

type testApp struct {
	Pool    *pgxpool.Pool
	Snippet *snippet.Service
	Impex   *impex.Service
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestApp bootstraps the application stack backed by a real PostgreSQL
// container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repository behind the LRU cache, as in production.
	store, err := cache.New(logger, profilerepo.New(pool), 64)
	require.NoError(t, err)

	// 4. Services. The small chunk size makes multi-transaction imports
	// reachable with a handful of profiles.
	snippetSvc := snippet.NewService(logger, store, txm, snippet.Config{
		DefaultLanguage: "en-US",
		PrettyJSON:      false,
		MaxProfiles:     500,
	})
	impexSvc := impex.NewService(logger, store, txm, impex.Config{ChunkSize: 2})

	return &testApp{
		Pool:    pool,
		Snippet: snippetSvc,
		Impex:   impexSvc,
	}
}

// ---------------------------------------------------------------------------
// Data builders and assertion helpers.
// ---------------------------------------------------------------------------

// uniqueSite returns a site key that cannot collide across tests sharing
// the database container.
func uniqueSite(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

// profileInput returns a fully populated authoring input for site.
func profileInput(site string) snippet.ProfileInput {
	return snippet.ProfileInput{
		Site:      site,
		SiteName:  "Harborline",
		OrgType:   "CafeOrCoffeeShop",
		OrgName:   "Harborline Cafe",
		URL:       "https://" + site + ".example",
		LogoURL:   "https://" + site + ".example/logo.png",
		Telephone: "+1-603-555-0117",
		Address: domain.Address{
			Street:     "9 Pier Road",
			Locality:   "Portsmouth",
			Region:     "NH",
			PostalCode: "03801",
			Country:    "US",
		},
		Geo: &snippet.GeoInput{Latitude: 43.0718, Longitude: -70.7626},
		Hours: []snippet.HoursInput{
			{
				Days:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				Opens:  "08:00",
				Closes: "22:30",
			},
		},
		Actions: []snippet.ActionInput{
			{
				ActionType: "ReserveAction",
				Target:     "https://" + site + ".example/book",
				Language:   "en-US",
				ResultType: "Reservation",
				ResultName: "Book a table",
			},
		},
	}
}

// decodeDocument parses a rendered JSON-LD document into a generic node map.
func decodeDocument(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var node map[string]any
	require.NoError(t, json.Unmarshal(raw, &node))
	return node
}

// findEntry returns the export entry for site, failing the test if absent.
func findEntry(t *testing.T, doc *impex.ExportDoc, site string) impex.ExportEntry {
	t.Helper()
	for _, e := range doc.Profiles {
		if e.Profile.Site == site {
			return e
		}
	}
	t.Fatalf("export does not contain site %q", site)
	return impex.ExportEntry{}
}
