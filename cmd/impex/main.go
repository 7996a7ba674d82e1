// Command impex exports stored profiles to a JSON document and restores them
// from one. Exports carry a per-profile fingerprint of the rendered markup;
// imports verify it and skip profiles that no longer render the same way.
//
// Flags:
//
//	--export  write all profiles as a JSON export document
//	--import  restore profiles from a JSON export document
//	--in      input file path for --import (required)
//	--out     output file path for --export; empty or "-" writes to stdout
//	--actor   operator name recorded in the export document
//
// Exit codes: 0 = success, 1 = error or any profile skipped during import.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ormondry/seoforge-backend/internal/adapter/cache"
	"github.com/ormondry/seoforge-backend/internal/adapter/postgres"
	"github.com/ormondry/seoforge-backend/internal/adapter/postgres/profile"
	"github.com/ormondry/seoforge-backend/internal/app"
	"github.com/ormondry/seoforge-backend/internal/config"
	"github.com/ormondry/seoforge-backend/internal/service/impex"
	"github.com/ormondry/seoforge-backend/pkg/ctxutil"
)

func main() {
	exportFlag := flag.Bool("export", false, "write all profiles as a JSON export document")
	importFlag := flag.Bool("import", false, "restore profiles from a JSON export document")
	inFlag := flag.String("in", "", "input file path for --import")
	outFlag := flag.String("out", "", `output file path for --export; empty or "-" writes to stdout`)
	actorFlag := flag.String("actor", "", "operator name recorded in the export document")
	flag.Parse()

	if *exportFlag == *importFlag {
		fmt.Fprintln(os.Stderr, "Usage: impex --export [--out=profiles.json] | --import --in=profiles.json")
		os.Exit(1)
	}
	if *importFlag && *inFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: impex --import --in=profiles.json")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	logger.Info("starting impex",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ctx = ctxutil.WithRunID(ctx, uuid.New())
	if *actorFlag != "" {
		ctx = ctxutil.WithActor(ctx, *actorFlag)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	var store cache.ProfileSource = profile.New(pool)
	if cfg.Cache.Enabled {
		store, err = cache.New(logger, store, cfg.Cache.Size)
		if err != nil {
			logger.Error("init cache", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	svc := impex.NewService(logger, store, postgres.NewTxManager(pool), impex.Config{
		ChunkSize: cfg.Impex.ChunkSize,
	})

	if *exportFlag {
		runExport(ctx, logger, svc, *outFlag)
		return
	}
	runImport(ctx, logger, svc, *inFlag)
}

func runExport(ctx context.Context, logger *slog.Logger, svc *impex.Service, out string) {
	doc, err := svc.Export(ctx)
	if err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Error("encode export", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if out == "" || out == "-" {
		os.Stdout.Write(append(raw, '\n'))
		return
	}

	if err := os.WriteFile(out, raw, 0o644); err != nil {
		logger.Error("write export", slog.String("path", out), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("export written",
		slog.String("path", out),
		slog.Int("profiles", len(doc.Profiles)),
	)
}

func runImport(ctx context.Context, logger *slog.Logger, svc *impex.Service, in string) {
	raw, err := os.ReadFile(in)
	if err != nil {
		logger.Error("read import file", slog.String("path", in), slog.String("error", err.Error()))
		os.Exit(1)
	}

	var doc impex.ExportDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Error("decode import file", slog.String("path", in), slog.String("error", err.Error()))
		os.Exit(1)
	}

	report, err := svc.Import(ctx, &doc)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.Int("total", report.Total),
		slog.Int("created", report.Created),
		slog.Int("updated", report.Updated),
		slog.Int("skipped", report.Skipped),
	)

	if len(report.Errors) > 0 {
		for _, e := range report.Errors {
			logger.Warn("profile not imported",
				slog.String("site", e.Site),
				slog.String("reason", e.Reason),
			)
		}
		os.Exit(1)
	}
}
