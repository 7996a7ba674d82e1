package structdata

import (
	"github.com/ormondry/seoforge-backend/internal/domain"
)

// OpeningHours projects one authored hours block. Days pass through as
// authored: same order, duplicates kept. Cross-midnight hours arrive as
// two blocks, so opens/closes are emitted without comparison.
func OpeningHours(b domain.HoursBlock) map[string]any {
	days := make([]string, len(b.Days))
	copy(days, b.Days)

	return map[string]any{
		"@type":     "OpeningHoursSpecification",
		"dayOfWeek": days,
		"opens":     b.Opens.String(),
		"closes":    b.Closes.String(),
	}
}
