// Package snippet implements SEO profile authoring and schema.org JSON-LD
// rendering. A profile describes one site's organization: identity, contact
// details, opening hours and potential actions. The service validates
// authored input, persists profiles and projects them into JSON-LD
// documents ready for embedding in a page head.
package snippet

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by snippet service.
type profileRepo interface {
	GetBySite(ctx context.Context, site string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Profile, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by snippet service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxHoursBlocks  = 20
	MaxActionBlocks = 20
	MaxExtraJSONLen = 16 * 1024

	DefaultSearchLimit = 50
)

// Config carries the snippet service tunables.
type Config struct {
	// DefaultLanguage is stamped on action blocks authored without one.
	DefaultLanguage string
	// PrettyJSON switches rendered documents to indented output.
	PrettyJSON bool
	// MaxProfiles caps how many profiles can be stored.
	MaxProfiles int
}

// Service provides profile management and JSON-LD rendering operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	tx       txManager
	cfg      Config
}

// NewService creates a new snippet service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		log:      log.With("service", "snippet"),
		profiles: profiles,
		tx:       tx,
		cfg:      cfg,
	}
}
