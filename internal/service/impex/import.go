package impex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ormondry/seoforge-backend/internal/domain"
	"github.com/ormondry/seoforge-backend/internal/schemaorg"
)

// Import upserts every profile in doc, keyed by site. Entries with data
// problems (bad vocabulary, markup that does not render, fingerprint
// mismatches, duplicate sites within the document) are skipped and reported;
// infrastructure errors abort the import. Writes happen in chunks of
// Config.ChunkSize, one transaction per chunk, and chunks already committed
// stay committed when a later chunk fails.
func (s *Service) Import(ctx context.Context, doc *ExportDoc) (*ImportReport, error) {
	if doc == nil {
		return nil, domain.NewValidationError("export", "required")
	}
	if doc.Version != ExportVersion {
		return nil, domain.NewValidationError("version",
			fmt.Sprintf("unsupported export version %d, want %d", doc.Version, ExportVersion))
	}

	report := &ImportReport{Total: len(doc.Profiles)}

	// Pass 1: screen entries. Rendering is pure, so this needs no
	// transaction.
	seen := make(map[string]bool, len(doc.Profiles))
	pending := make([]*domain.Profile, 0, len(doc.Profiles))
	for _, entry := range doc.Profiles {
		p := entry.Profile.toDomain()

		if seen[p.Site] {
			s.skip(ctx, report, p.Site, "duplicate site in import")
			continue
		}
		if reason := importable(entry, p); reason != "" {
			s.skip(ctx, report, p.Site, reason)
			continue
		}

		seen[p.Site] = true
		pending = append(pending, p)
	}

	// Pass 2: write in chunks.
	chunkSize := s.cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	now := time.Now().UTC()
	for start := 0; start < len(pending); start += chunkSize {
		chunk := pending[start:min(start+chunkSize, len(pending))]

		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for _, p := range chunk {
				if err := s.upsert(txCtx, p, now, report); err != nil {
					return fmt.Errorf("import %s: %w", p.Site, err)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	s.log.InfoContext(ctx, "profiles imported",
		slog.Int("total", report.Total),
		slog.Int("created", report.Created),
		slog.Int("updated", report.Updated),
		slog.Int("skipped", report.Skipped),
	)

	return report, nil
}

// upsert writes one screened profile and counts the outcome.
func (s *Service) upsert(ctx context.Context, p *domain.Profile, now time.Time, report *ImportReport) error {
	existing, err := s.profiles.GetBySite(ctx, p.Site)
	switch {
	case err == nil:
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = now
		if _, err := s.profiles.Update(ctx, p); err != nil {
			return err
		}
		report.Updated++

	case errors.Is(err, domain.ErrNotFound):
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.UpdatedAt = now
		if _, err := s.profiles.Create(ctx, p); err != nil {
			return err
		}
		report.Created++

	default:
		return err
	}
	return nil
}

// skip records one rejected entry.
func (s *Service) skip(ctx context.Context, report *ImportReport, site, reason string) {
	report.Skipped++
	report.Errors = append(report.Errors, ImportError{Site: site, Reason: reason})
	s.log.WarnContext(ctx, "profile skipped",
		slog.String("site", site),
		slog.String("reason", reason),
	)
}

// importable screens one entry. It returns a human-readable reason when the
// entry must be skipped, or "" when it can be written.
func importable(e ExportEntry, p *domain.Profile) string {
	if p.Site == "" {
		return "site is required"
	}
	if strings.TrimSpace(p.OrgName) == "" {
		return "org_name is required"
	}
	if !schemaorg.IsOrgType(p.OrgType) {
		return fmt.Sprintf("unknown organization type %q", p.OrgType)
	}

	fp, err := fingerprint(*p)
	if err != nil {
		return fmt.Sprintf("does not render: %v", err)
	}
	if e.Fingerprint != "" && e.Fingerprint != fp {
		return "fingerprint mismatch"
	}
	return ""
}
