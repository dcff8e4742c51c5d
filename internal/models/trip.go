package models

// Day type values. "feriado" survives from the earlier schema revision;
// see DESIGN.md for the enumeration decision.
const (
	DayTypeWeekday  = "habil"
	DayTypeHoliday  = "feriado"
	DayTypeSaturday = "sabado"
	DayTypeSunday   = "domingo"
)

// ValidDayType reports whether s is one of the canonical day types.
func ValidDayType(s string) bool {
	switch s {
	case DayTypeWeekday, DayTypeHoliday, DayTypeSaturday, DayTypeSunday:
		return true
	}
	return false
}

// Trip is one scheduled departure on a Route for one day type.
// Departure and Arrival are wall clock "HH:MM" strings.
type Trip struct {
	ID        int64  `json:"id" db:"id"`
	DayType   string `json:"day_type" db:"day_type"`
	Departure string `json:"departure" db:"departure"`
	Arrival   string `json:"arrival" db:"arrival"`
	Direct    bool   `json:"direct" db:"direct"`
	RouteID   int64  `json:"route_id" db:"route_id"`

	// Joined route fields, present on search results
	Origin      string `json:"origin,omitempty" db:"origin"`
	Destination string `json:"destination,omitempty" db:"destination"`
	LineName    string `json:"line_name,omitempty" db:"line_name"`
}

// CreateTripRequest is the payload for POST /routes/:id/trips
type CreateTripRequest struct {
	DayType   string `json:"day_type" binding:"required"`
	Departure string `json:"departure" binding:"required"`
	Arrival   string `json:"arrival" binding:"required"`
	Direct    bool   `json:"direct"`
}

// Trip duration bounds in minutes, after midnight wrap.
const (
	MinTripDurationMinutes = 5
	MaxTripDurationMinutes = 600
)
