package snippet

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/ormondry/seoforge-backend/internal/domain"
	"github.com/ormondry/seoforge-backend/internal/schemaorg"
	"github.com/ormondry/seoforge-backend/internal/structdata"
)

// weekdayChoice validates the day picker on opening hours blocks.
var weekdayChoice = domain.MultiChoiceConfig{
	Choices:  schemaorg.Weekdays(),
	Required: true,
	Help:     "For late night hours past 23:59, define each day in a separate block.",
}

// ---------------------------------------------------------------------------
// ProfileInput
// ---------------------------------------------------------------------------

// GeoInput holds a geographic point as authored.
type GeoInput struct {
	Latitude  float64
	Longitude float64
}

// HoursInput holds one opening hours block as authored. Times are "HH:MM"
// strings; a block closing past midnight keeps Closes smaller than Opens.
type HoursInput struct {
	Days   []string
	Opens  string
	Closes string
}

// ActionInput holds one potential action block as authored.
type ActionInput struct {
	ActionType string
	Target     string
	Query      string
	Language   string
	ResultType string
	ResultName string
	ExtraJSON  string
}

// ProfileInput holds the parameters for creating or replacing a profile.
type ProfileInput struct {
	Site      string
	SiteName  string
	OrgType   string
	OrgName   string
	URL       string
	LogoURL   string
	ImageURL  string
	Telephone string
	Address   domain.Address
	Geo       *GeoInput
	Hours     []HoursInput
	Actions   []ActionInput
	ExtraJSON string
}

// Validate checks all fields and collects all errors.
func (i ProfileInput) Validate() error {
	var errs []domain.FieldError

	site := domain.NormalizeSite(i.Site)
	if site == "" {
		errs = append(errs, domain.FieldError{Field: "site", Message: "required"})
	} else {
		if len(site) > 64 {
			errs = append(errs, domain.FieldError{Field: "site", Message: "too long (max 64)"})
		}
		if !isSiteKey(site) {
			errs = append(errs, domain.FieldError{Field: "site", Message: "must contain only lowercase letters, digits, '-' and '.'"})
		}
	}

	if strings.TrimSpace(i.SiteName) == "" {
		errs = append(errs, domain.FieldError{Field: "site_name", Message: "required"})
	}
	if len(i.SiteName) > 255 {
		errs = append(errs, domain.FieldError{Field: "site_name", Message: "too long (max 255)"})
	}

	if i.OrgType == "" {
		errs = append(errs, domain.FieldError{Field: "org_type", Message: "required"})
	} else if !schemaorg.IsOrgType(i.OrgType) {
		errs = append(errs, domain.FieldError{Field: "org_type", Message: fmt.Sprintf("unknown organization type %q", i.OrgType)})
	}

	if strings.TrimSpace(i.OrgName) == "" {
		errs = append(errs, domain.FieldError{Field: "org_name", Message: "required"})
	}
	if len(i.OrgName) > 255 {
		errs = append(errs, domain.FieldError{Field: "org_name", Message: "too long (max 255)"})
	}

	errs = append(errs, validateOptionalURL("url", i.URL)...)
	errs = append(errs, validateOptionalURL("logo_url", i.LogoURL)...)
	errs = append(errs, validateOptionalURL("image_url", i.ImageURL)...)

	if len(i.Telephone) > 50 {
		errs = append(errs, domain.FieldError{Field: "telephone", Message: "too long (max 50)"})
	}

	errs = append(errs, validateAddress(i.Address)...)

	if i.Geo != nil {
		if i.Geo.Latitude < -90 || i.Geo.Latitude > 90 {
			errs = append(errs, domain.FieldError{Field: "geo.latitude", Message: "out of range (-90..90)"})
		}
		if i.Geo.Longitude < -180 || i.Geo.Longitude > 180 {
			errs = append(errs, domain.FieldError{Field: "geo.longitude", Message: "out of range (-180..180)"})
		}
	}

	if len(i.Hours) > MaxHoursBlocks {
		errs = append(errs, domain.FieldError{Field: "hours", Message: fmt.Sprintf("too many (max %d)", MaxHoursBlocks)})
	}
	for idx, h := range i.Hours {
		errs = append(errs, validateHoursBlock(idx, h)...)
	}

	if len(i.Actions) > MaxActionBlocks {
		errs = append(errs, domain.FieldError{Field: "actions", Message: fmt.Sprintf("too many (max %d)", MaxActionBlocks)})
	}
	for idx, a := range i.Actions {
		errs = append(errs, validateActionBlock(idx, a)...)
	}

	errs = append(errs, validateExtraJSON("extra_json", i.ExtraJSON)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateHoursBlock checks one opening hours block.
func validateHoursBlock(idx int, h HoursInput) []domain.FieldError {
	var errs []domain.FieldError

	if err := weekdayChoice.Validate(h.Days); err != nil {
		errs = append(errs, reFieldChoiceErrors(err, fieldIndex("hours", idx, "days"))...)
	}

	if _, err := domain.ParseTimeOfDay(h.Opens); err != nil {
		errs = append(errs, domain.FieldError{Field: fieldIndex("hours", idx, "opens"), Message: "must be HH:MM"})
	}
	if _, err := domain.ParseTimeOfDay(h.Closes); err != nil {
		errs = append(errs, domain.FieldError{Field: fieldIndex("hours", idx, "closes"), Message: "must be HH:MM"})
	}

	return errs
}

// validateActionBlock checks one potential action block.
func validateActionBlock(idx int, a ActionInput) []domain.FieldError {
	var errs []domain.FieldError

	if a.ActionType == "" {
		errs = append(errs, domain.FieldError{Field: fieldIndex("actions", idx, "action_type"), Message: "required"})
	} else if !schemaorg.IsActionType(a.ActionType) {
		errs = append(errs, domain.FieldError{
			Field:   fieldIndex("actions", idx, "action_type"),
			Message: fmt.Sprintf("unknown action type %q", a.ActionType),
		})
	}

	switch {
	case strings.TrimSpace(a.Target) == "":
		errs = append(errs, domain.FieldError{Field: fieldIndex("actions", idx, "target"), Message: "required"})
	case len(a.Target) > 2000:
		errs = append(errs, domain.FieldError{Field: fieldIndex("actions", idx, "target"), Message: "too long (max 2000)"})
	case !isValidHTTPURL(a.Target):
		errs = append(errs, domain.FieldError{Field: fieldIndex("actions", idx, "target"), Message: "must be an absolute http(s) URL"})
	}

	if a.Query != "" && !schemaorg.IsSearchQueryChoice(a.Query) {
		errs = append(errs, domain.FieldError{
			Field:   fieldIndex("actions", idx, "query"),
			Message: fmt.Sprintf("invalid choice %q", a.Query),
		})
	}

	if a.Language != "" {
		if _, err := language.Parse(a.Language); err != nil {
			errs = append(errs, domain.FieldError{Field: fieldIndex("actions", idx, "language"), Message: "invalid BCP 47 language tag"})
		}
	}

	if a.ResultType != "" && !schemaorg.IsResultType(a.ResultType) {
		errs = append(errs, domain.FieldError{
			Field:   fieldIndex("actions", idx, "result_type"),
			Message: fmt.Sprintf("unknown result type %q", a.ResultType),
		})
	}

	if len(a.ResultName) > 255 {
		errs = append(errs, domain.FieldError{Field: fieldIndex("actions", idx, "result_name"), Message: "too long (max 255)"})
	}

	errs = append(errs, validateExtraJSON(fieldIndex("actions", idx, "extra_json"), a.ExtraJSON)...)

	return errs
}

// validateAddress checks the optional postal address components.
func validateAddress(a domain.Address) []domain.FieldError {
	var errs []domain.FieldError
	for _, c := range []struct {
		field string
		value string
	}{
		{"address.street", a.Street},
		{"address.locality", a.Locality},
		{"address.region", a.Region},
		{"address.postal_code", a.PostalCode},
		{"address.country", a.Country},
	} {
		if len(c.value) > 255 {
			errs = append(errs, domain.FieldError{Field: c.field, Message: "too long (max 255)"})
		}
	}
	return errs
}

// validateOptionalURL checks an optional absolute http(s) URL field.
func validateOptionalURL(field, rawURL string) []domain.FieldError {
	if rawURL == "" {
		return nil
	}
	var errs []domain.FieldError
	if len(rawURL) > 2000 {
		errs = append(errs, domain.FieldError{Field: field, Message: "too long (max 2000)"})
	}
	if !isValidHTTPURL(rawURL) {
		errs = append(errs, domain.FieldError{Field: field, Message: "must be an absolute http(s) URL"})
	}
	return errs
}

// validateExtraJSON checks an optional JSON object overlay field.
func validateExtraJSON(field, raw string) []domain.FieldError {
	if raw == "" {
		return nil
	}
	var errs []domain.FieldError
	if len(raw) > MaxExtraJSONLen {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("too long (max %d)", MaxExtraJSONLen)})
		return errs
	}
	if _, err := structdata.ParseObject(field, raw); err != nil {
		errs = append(errs, domain.FieldError{Field: field, Message: "must be a JSON object"})
	}
	return errs
}

// reFieldChoiceErrors rewrites the "selection" field paths produced by a
// choice config into the caller's field path, e.g. "selection[2]" into
// "hours[0].days[2]".
func reFieldChoiceErrors(err error, field string) []domain.FieldError {
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		return []domain.FieldError{{Field: field, Message: err.Error()}}
	}
	out := make([]domain.FieldError, 0, len(vErr.Errors))
	for _, fe := range vErr.Errors {
		out = append(out, domain.FieldError{
			Field:   strings.Replace(fe.Field, "selection", field, 1),
			Message: fe.Message,
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Conversion
// ---------------------------------------------------------------------------

// toDomain converts validated input into a domain profile. Action blocks
// authored without a language get defaultLang stamped in.
func (i ProfileInput) toDomain(defaultLang string) *domain.Profile {
	p := &domain.Profile{
		Site:      domain.NormalizeSite(i.Site),
		SiteName:  strings.TrimSpace(i.SiteName),
		OrgType:   i.OrgType,
		OrgName:   strings.TrimSpace(i.OrgName),
		URL:       i.URL,
		LogoURL:   i.LogoURL,
		ImageURL:  i.ImageURL,
		Telephone: strings.TrimSpace(i.Telephone),
		Address: domain.Address{
			Street:     strings.TrimSpace(i.Address.Street),
			Locality:   strings.TrimSpace(i.Address.Locality),
			Region:     strings.TrimSpace(i.Address.Region),
			PostalCode: strings.TrimSpace(i.Address.PostalCode),
			Country:    strings.TrimSpace(i.Address.Country),
		},
		Hours:     make([]domain.HoursBlock, 0, len(i.Hours)),
		Actions:   make([]domain.ActionBlock, 0, len(i.Actions)),
		ExtraJSON: i.ExtraJSON,
	}

	if i.Geo != nil {
		p.Geo = &domain.GeoPoint{Latitude: i.Geo.Latitude, Longitude: i.Geo.Longitude}
	}

	for _, h := range i.Hours {
		// Times were checked by Validate.
		opens, _ := domain.ParseTimeOfDay(h.Opens)
		closes, _ := domain.ParseTimeOfDay(h.Closes)
		p.Hours = append(p.Hours, domain.HoursBlock{
			Days:   slices.Clone(h.Days),
			Opens:  opens,
			Closes: closes,
		})
	}

	for _, a := range i.Actions {
		lang := a.Language
		if lang == "" {
			lang = defaultLang
		}
		p.Actions = append(p.Actions, domain.ActionBlock{
			ActionType: a.ActionType,
			Target:     a.Target,
			Query:      a.Query,
			Language:   lang,
			ResultType: a.ResultType,
			ResultName: a.ResultName,
			ExtraJSON:  a.ExtraJSON,
		})
	}

	p.SearchText = buildSearchText(p)
	return p
}

// buildSearchText flattens the profile into one normalized line for
// substring search.
func buildSearchText(p *domain.Profile) string {
	parts := []string{p.Site, p.SiteName, p.OrgName, p.OrgType,
		p.Address.Locality, p.Address.Region, p.Address.Country}
	for _, h := range p.Hours {
		parts = append(parts, weekdayChoice.SearchableText(h.Days)...)
	}
	for _, a := range p.Actions {
		parts = append(parts, a.ActionType, a.ResultName)
	}
	return domain.NormalizeText(strings.Join(parts, " "))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// isValidHTTPURL checks if the URL is a valid HTTP or HTTPS URL.
func isValidHTTPURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	if u.Host == "" {
		return false
	}

	return true
}

// isSiteKey reports whether s is a lowercase slug or hostname: letters,
// digits, hyphens and dots, starting and ending alphanumeric.
func isSiteKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '-' || c == '.':
			if i == 0 || i == len(s)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// fieldIndex formats a nested field path like "items[0].id".
func fieldIndex(parent string, idx int, field string) string {
	return parent + "[" + strconv.Itoa(idx) + "]." + field
}
