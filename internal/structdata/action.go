package structdata

import (
	"github.com/ormondry/seoforge-backend/internal/domain"
	"github.com/ormondry/seoforge-backend/internal/schemaorg"
)

// Action projects one authored action block through three fixed steps:
// base shape keyed on the action type, then the optional result node,
// then the extra-JSON overlay. A bad overlay fails the whole projection;
// there is no partial result.
//
// Search actions keep target as the literal template string and carry the
// query marker verbatim, empty or not. Every other type wraps target in
// an EntryPoint with the language tag and the full platform triple.
func Action(b domain.ActionBlock) (map[string]any, error) {
	var sd map[string]any
	if b.ActionType == schemaorg.ActionTypeSearch {
		sd = map[string]any{
			"@type":  b.ActionType,
			"target": b.Target,
			"query":  b.Query,
		}
	} else {
		sd = map[string]any{
			"@type": b.ActionType,
			"target": map[string]any{
				"@type":          "EntryPoint",
				"urlTemplate":    b.Target,
				"inLanguage":     b.Language,
				"actionPlatform": schemaorg.ActionPlatforms(),
			},
		}
	}

	if b.ResultType != "" {
		sd["result"] = map[string]any{
			"@type": b.ResultType,
			"name":  b.ResultName,
		}
	}

	extra, err := ParseObject("extra_json", b.ExtraJSON)
	if err != nil {
		return nil, err
	}
	return Overlay(sd, extra), nil
}
