package snippet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ormondry/seoforge-backend/internal/structdata"
)

// Render projects the stored profile for site into its schema.org
// Organization node. The node has no @context; callers embedding it into a
// larger graph merge it as-is, callers emitting a standalone document use
// RenderDocument.
func (s *Service) Render(ctx context.Context, site string) (map[string]any, error) {
	p, err := s.GetProfile(ctx, site)
	if err != nil {
		return nil, err
	}

	node, err := structdata.Organization(*p)
	if err != nil {
		return nil, fmt.Errorf("render profile %s: %w", p.Site, err)
	}
	return node, nil
}

// RenderDocument returns the complete JSON-LD document for site, ready for
// embedding in a script tag. Output is indented when the service is
// configured for pretty JSON.
func (s *Service) RenderDocument(ctx context.Context, site string) ([]byte, error) {
	node, err := s.Render(ctx, site)
	if err != nil {
		return nil, err
	}

	doc, err := structdata.Render(node, s.cfg.PrettyJSON)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	s.log.DebugContext(ctx, "profile rendered",
		slog.String("site", site),
		slog.Int("bytes", len(doc)),
	)

	return doc, nil
}
