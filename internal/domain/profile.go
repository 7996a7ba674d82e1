package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a per-site organization structured-data profile: identity,
// contact and location details, opening hours, potential actions, and a
// free-form extra-JSON escape hatch. One profile per site slug.
type Profile struct {
	ID         uuid.UUID
	Site       string
	SiteName   string
	OrgType    string
	OrgName    string
	URL        string
	LogoURL    string
	ImageURL   string
	Telephone  string
	Address    Address
	Geo        *GeoPoint
	Hours      []HoursBlock
	Actions    []ActionBlock
	ExtraJSON  string
	SearchText string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Address holds the postal address components. All fields are optional;
// empty components are left out of the projected document.
type Address struct {
	Street     string `json:"street,omitempty"`
	Locality   string `json:"locality,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// IsZero reports whether no address component is set.
func (a Address) IsZero() bool {
	return a == (Address{})
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
