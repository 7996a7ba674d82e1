package structdata

import (
	"encoding/json"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

// Overlay merges src into dst key by key, src winning on conflicts. Any
// key may be replaced, including structural ones like @type and target;
// the extra-JSON escape hatch is allowed to rewrite what the projection
// built. dst is returned for chaining and allocated when nil.
func Overlay(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ParseObject parses an author-supplied extra-JSON payload. Empty input
// means no overlay: (nil, nil). Input that does not parse yields a
// MarkupError naming the field, and so does input that parses to
// something other than an object; the two carry distinct messages.
func ParseObject(field, raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, domain.NewMarkupError(field, "invalid JSON", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, domain.NewMarkupError(field, "not a JSON object", nil)
	}
	return obj, nil
}
