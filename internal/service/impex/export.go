package impex

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/ormondry/seoforge-backend/internal/domain"
	"github.com/ormondry/seoforge-backend/internal/structdata"
	"github.com/ormondry/seoforge-backend/pkg/ctxutil"
)

// Export dumps every stored profile together with the fingerprint of its
// rendered JSON-LD document. Profiles come back ordered by site, so two
// exports of the same data differ only in the stamp fields. A profile that
// no longer renders fails the whole export.
func (s *Service) Export(ctx context.Context) (*ExportDoc, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	entries := make([]ExportEntry, 0, len(profiles))
	for _, p := range profiles {
		fp, err := fingerprint(p)
		if err != nil {
			return nil, fmt.Errorf("fingerprint %s: %w", p.Site, err)
		}
		entries = append(entries, ExportEntry{
			Profile:     recordFromProfile(p),
			Fingerprint: fp,
		})
	}

	runID, ok := ctxutil.RunIDFromCtx(ctx)
	if !ok {
		runID = uuid.New()
	}

	doc := &ExportDoc{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
		RunID:      runID,
		Actor:      ctxutil.ActorFromCtx(ctx),
		Profiles:   entries,
	}

	s.log.InfoContext(ctx, "profiles exported",
		slog.Int("count", len(entries)),
		slog.String("run_id", runID.String()),
	)

	return doc, nil
}

// fingerprint hashes the compact rendered document of p.
func fingerprint(p domain.Profile) (string, error) {
	node, err := structdata.Organization(p)
	if err != nil {
		return "", err
	}
	raw, err := structdata.Render(node, false)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxh3.Hash(raw)), nil
}
