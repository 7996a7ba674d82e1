package structdata

import (
	"errors"
	"fmt"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

// Organization projects a profile into its schema.org organization node.
// Presence follows the authored profile: empty optional fields are left
// out rather than emitted blank. The profile's own extra-JSON overlay is
// applied last and may replace anything the projection built.
func Organization(p domain.Profile) (map[string]any, error) {
	sd := map[string]any{
		"@type": p.OrgType,
		"name":  p.OrgName,
	}

	if p.URL != "" {
		sd["url"] = p.URL
		sd["@id"] = p.URL + "#organization"
	}
	if p.LogoURL != "" {
		sd["logo"] = map[string]any{
			"@type": "ImageObject",
			"url":   p.LogoURL,
		}
	}
	if p.ImageURL != "" {
		sd["image"] = p.ImageURL
	}
	if p.Telephone != "" {
		sd["telephone"] = p.Telephone
	}
	if !p.Address.IsZero() {
		sd["address"] = postalAddress(p.Address)
	}
	if p.Geo != nil {
		sd["geo"] = map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  p.Geo.Latitude,
			"longitude": p.Geo.Longitude,
		}
	}

	if len(p.Hours) > 0 {
		hours := make([]any, 0, len(p.Hours))
		for _, h := range p.Hours {
			hours = append(hours, OpeningHours(h))
		}
		sd["openingHoursSpecification"] = hours
	}

	if len(p.Actions) > 0 {
		actions := make([]any, 0, len(p.Actions))
		for i, a := range p.Actions {
			node, err := Action(a)
			if err != nil {
				var mErr *domain.MarkupError
				if errors.As(err, &mErr) {
					return nil, domain.NewMarkupError(
						fmt.Sprintf("actions[%d].%s", i, mErr.Field), mErr.Message, mErr.Err)
				}
				return nil, err
			}
			actions = append(actions, node)
		}
		sd["potentialAction"] = actions
	}

	extra, err := ParseObject("extra_json", p.ExtraJSON)
	if err != nil {
		return nil, err
	}
	return Overlay(sd, extra), nil
}

// postalAddress builds the PostalAddress node, skipping empty components.
func postalAddress(a domain.Address) map[string]any {
	sd := map[string]any{
		"@type": "PostalAddress",
	}
	if a.Street != "" {
		sd["streetAddress"] = a.Street
	}
	if a.Locality != "" {
		sd["addressLocality"] = a.Locality
	}
	if a.Region != "" {
		sd["addressRegion"] = a.Region
	}
	if a.PostalCode != "" {
		sd["postalCode"] = a.PostalCode
	}
	if a.Country != "" {
		sd["addressCountry"] = a.Country
	}
	return sd
}
