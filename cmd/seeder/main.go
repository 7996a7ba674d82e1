// Command seeder loads a set of demo profiles through the regular authoring
// path. Running it twice is safe: profiles are upserted by site key. It is
// intended for local development and demo environments, not production.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ormondry/seoforge-backend/internal/adapter/postgres"
	"github.com/ormondry/seoforge-backend/internal/adapter/postgres/profile"
	"github.com/ormondry/seoforge-backend/internal/app"
	"github.com/ormondry/seoforge-backend/internal/config"
	"github.com/ormondry/seoforge-backend/internal/domain"
	"github.com/ormondry/seoforge-backend/internal/service/snippet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := snippet.NewService(logger, profile.New(pool), postgres.NewTxManager(pool), snippet.Config{
		DefaultLanguage: cfg.Snippet.DefaultLanguage,
		PrettyJSON:      cfg.Snippet.PrettyJSON,
		MaxProfiles:     cfg.Snippet.MaxProfiles,
	})

	for _, in := range demoProfiles() {
		p, err := svc.UpsertProfile(ctx, in)
		if err != nil {
			logger.Error("seed profile failed",
				slog.String("site", in.Site),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		logger.Info("profile seeded",
			slog.String("site", p.Site),
			slog.String("profile_id", p.ID.String()),
		)
	}

	logger.Info("seeding completed", slog.Int("profiles", len(demoProfiles())))
}

// demoProfiles covers the main authoring shapes: a reservation business with
// hours and coordinates, a store with a site search action, and a venue with
// per-action extra JSON.
func demoProfiles() []snippet.ProfileInput {
	return []snippet.ProfileInput{
		{
			Site:      "cafe-aurora",
			SiteName:  "Cafe Aurora",
			OrgType:   "CafeOrCoffeeShop",
			OrgName:   "Cafe Aurora",
			URL:       "https://cafe-aurora.example",
			LogoURL:   "https://cafe-aurora.example/static/logo.png",
			Telephone: "+1-603-555-0142",
			Address: domain.Address{
				Street:     "12 Market Square",
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
				{
					Days:   []string{"Saturday", "Sunday"},
					Opens:  "09:00",
					Closes: "23:00",
				},
			},
			Actions: []snippet.ActionInput{
				{
					ActionType: "ReserveAction",
					Target:     "https://cafe-aurora.example/book",
					Language:   "en-US",
					ResultType: "Reservation",
					ResultName: "Book a table",
				},
			},
			ExtraJSON: `{"slogan": "Coffee worth the tide chart"}`,
		},
		{
			Site:     "tidepool-books",
			SiteName: "Tidepool Books",
			OrgType:  "Store",
			OrgName:  "Tidepool Books",
			URL:      "https://tidepool-books.example",
			Address: domain.Address{
				Street:   "4 Harbor Lane",
				Locality: "Kittery",
				Region:   "ME",
				Country:  "US",
			},
			Hours: []snippet.HoursInput{
				{
					Days:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
					Opens:  "10:00",
					Closes: "18:00",
				},
			},
			Actions: []snippet.ActionInput{
				{
					ActionType: "SearchAction",
					Target:     "https://tidepool-books.example/search?q={search_term_string}",
					Query:      "required name=search_term_string",
				},
				{
					ActionType: "OrderAction",
					Target:     "https://tidepool-books.example/order",
					ResultType: "Order",
					ResultName: "Order a book",
				},
			},
		},
		{
			Site:     "granite-playhouse",
			SiteName: "Granite Playhouse",
			OrgType:  "PerformingGroup",
			OrgName:  "Granite Playhouse Company",
			URL:      "https://granite-playhouse.example",
			ImageURL: "https://granite-playhouse.example/static/stage.jpg",
			Address: domain.Address{
				Locality: "Concord",
				Region:   "NH",
				Country:  "US",
			},
			Actions: []snippet.ActionInput{
				{
					ActionType: "ReserveAction",
					Target:     "https://granite-playhouse.example/tickets",
					ResultType: "EventReservation",
					ResultName: "Reserve seats",
					ExtraJSON:  `{"description": "Evening performances only"}`,
				},
			},
		},
	}
}
