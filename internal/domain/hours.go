package domain

// HoursBlock is one authored opening-hours block: the weekdays it applies
// to and the opens/closes wall-clock pair. Hours that run past midnight
// are written as two blocks, one per calendar day.
type HoursBlock struct {
	Days   []string  `json:"days"`
	Opens  TimeOfDay `json:"opens"`
	Closes TimeOfDay `json:"closes"`
}
