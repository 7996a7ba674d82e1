// Package impex implements bulk export and import of SEO profiles. Exports
// carry a fingerprint of each profile's rendered JSON-LD document, so a
// restore can verify that the data still projects to the same markup it was
// backed up with.
package impex

import (
	"context"
	"log/slog"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by impex service.
type profileRepo interface {
	GetBySite(ctx context.Context, site string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

// txManager defines the transaction manager interface needed by impex service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultChunkSize is used when Config.ChunkSize is not set.
const DefaultChunkSize = 50

// Config carries the impex service tunables.
type Config struct {
	// ChunkSize is how many profiles are written per import transaction.
	ChunkSize int
}

// Service provides profile export and import operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	tx       txManager
	cfg      Config
}

// NewService creates a new impex service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		log:      log.With("service", "impex"),
		profiles: profiles,
		tx:       tx,
		cfg:      cfg,
	}
}
