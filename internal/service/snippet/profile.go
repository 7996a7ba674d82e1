package snippet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

// UpsertProfile creates the profile for input.Site or replaces it wholesale
// if one already exists. The stored row always reflects the full input; there
// are no partial updates.
func (s *Service) UpsertProfile(ctx context.Context, input ProfileInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := input.toDomain(s.cfg.DefaultLanguage)
	now := time.Now().UTC()

	var (
		out     *domain.Profile
		created bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.profiles.GetBySite(txCtx, p.Site)
		switch {
		case err == nil:
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
			p.UpdatedAt = now
			out, err = s.profiles.Update(txCtx, p)
			if err != nil {
				return fmt.Errorf("update profile: %w", err)
			}

		case errors.Is(err, domain.ErrNotFound):
			count, err := s.profiles.Count(txCtx)
			if err != nil {
				return fmt.Errorf("count profiles: %w", err)
			}
			if count >= int64(s.cfg.MaxProfiles) {
				return domain.NewValidationError("profiles", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxProfiles))
			}

			created = true
			p.ID = uuid.New()
			p.CreatedAt = now
			p.UpdatedAt = now
			out, err = s.profiles.Create(txCtx, p)
			if err != nil {
				return fmt.Errorf("create profile: %w", err)
			}

		default:
			return fmt.Errorf("get profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile upserted",
		slog.String("site", out.Site),
		slog.String("profile_id", out.ID.String()),
		slog.Bool("created", created),
	)

	return out, nil
}

// GetProfile returns the stored profile for site.
func (s *Service) GetProfile(ctx context.Context, site string) (*domain.Profile, error) {
	key := domain.NormalizeSite(site)
	if key == "" {
		return nil, domain.NewValidationError("site", "required")
	}

	p, err := s.profiles.GetBySite(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// ListProfiles returns all stored profiles ordered by site.
func (s *Service) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// SearchProfiles returns profiles whose search text contains query,
// case-insensitively. A non-positive limit falls back to DefaultSearchLimit.
func (s *Service) SearchProfiles(ctx context.Context, query string, limit int) ([]domain.Profile, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, domain.NewValidationError("query", "required")
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	profiles, err := s.profiles.Search(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search profiles: %w", err)
	}
	return profiles, nil
}

// DeleteProfile removes the stored profile for site.
func (s *Service) DeleteProfile(ctx context.Context, site string) error {
	key := domain.NormalizeSite(site)
	if key == "" {
		return domain.NewValidationError("site", "required")
	}

	p, err := s.profiles.GetBySite(ctx, key)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	if err := s.profiles.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile deleted",
		slog.String("site", p.Site),
		slog.String("profile_id", p.ID.String()),
	)

	return nil
}
