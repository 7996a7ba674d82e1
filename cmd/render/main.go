// Command render prints JSON-LD documents for stored profiles. The output is
// the complete script-tag payload, @context included. One profile renders to
// stdout or a file; --all renders every profile into a directory, one
// <site>.json per profile.
//
// Flags:
//
//	--site     site key of the profile to render
//	--all      render every stored profile
//	--out      output file path for --site; empty or "-" writes to stdout
//	--out-dir  output directory for --all (required with --all)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ormondry/seoforge-backend/internal/adapter/cache"
	"github.com/ormondry/seoforge-backend/internal/adapter/postgres"
	"github.com/ormondry/seoforge-backend/internal/adapter/postgres/profile"
	"github.com/ormondry/seoforge-backend/internal/app"
	"github.com/ormondry/seoforge-backend/internal/config"
	"github.com/ormondry/seoforge-backend/internal/service/snippet"
)

func main() {
	siteFlag := flag.String("site", "", "site key of the profile to render")
	allFlag := flag.Bool("all", false, "render every stored profile")
	outFlag := flag.String("out", "", `output file path for --site; empty or "-" writes to stdout`)
	outDirFlag := flag.String("out-dir", "", "output directory for --all")
	flag.Parse()

	singleMode := *siteFlag != "" && !*allFlag
	batchMode := *allFlag && *siteFlag == "" && *outDirFlag != ""
	if !singleMode && !batchMode {
		fmt.Fprintln(os.Stderr, "Usage: render --site=cafe-aurora [--out=snippet.json] | render --all --out-dir=dist/")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

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

	svc := snippet.NewService(logger, store, postgres.NewTxManager(pool), snippet.Config{
		DefaultLanguage: cfg.Snippet.DefaultLanguage,
		PrettyJSON:      cfg.Snippet.PrettyJSON,
		MaxProfiles:     cfg.Snippet.MaxProfiles,
	})

	if *allFlag {
		renderAll(ctx, logger, svc, *outDirFlag)
		return
	}
	renderOne(ctx, logger, svc, *siteFlag, *outFlag)
}

func renderOne(ctx context.Context, logger *slog.Logger, svc *snippet.Service, site, out string) {
	doc, err := svc.RenderDocument(ctx, site)
	if err != nil {
		logger.Error("render failed",
			slog.String("site", site),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	if out == "" || out == "-" {
		os.Stdout.Write(append(doc, '\n'))
		return
	}

	if err := os.WriteFile(out, doc, 0o644); err != nil {
		logger.Error("write output", slog.String("path", out), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("document written",
		slog.String("site", site),
		slog.String("path", out),
		slog.Int("bytes", len(doc)),
	)
}

func renderAll(ctx context.Context, logger *slog.Logger, svc *snippet.Service, outDir string) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Error("create output directory", slog.String("path", outDir), slog.String("error", err.Error()))
		os.Exit(1)
	}

	profiles, err := svc.ListProfiles(ctx)
	if err != nil {
		logger.Error("list profiles", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, p := range profiles {
		doc, err := svc.RenderDocument(ctx, p.Site)
		if err != nil {
			logger.Error("render failed",
				slog.String("site", p.Site),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}

		path := filepath.Join(outDir, p.Site+".json")
		if err := os.WriteFile(path, doc, 0o644); err != nil {
			logger.Error("write output", slog.String("path", path), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("documents written",
		slog.Int("profiles", len(profiles)),
		slog.String("out_dir", outDir),
	)
}
