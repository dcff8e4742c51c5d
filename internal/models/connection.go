package models

// Connection is one feasible single-transfer itinerary: a first leg
// into an intermediate city and the earliest second leg departing
// strictly after the first leg arrives, compared on the same day.
type Connection struct {
	Via string `json:"via"`

	Leg1Departure string `json:"leg_1_departure"`
	Leg1Arrival   string `json:"leg_1_arrival"`
	Leg1Line      string `json:"leg_1_line,omitempty"`

	Leg2Departure string `json:"leg_2_departure"`
	Leg2Arrival   string `json:"leg_2_arrival"`
	Leg2Line      string `json:"leg_2_line,omitempty"`

	WaitMinutes int `json:"wait_minutes"`
}

// ScheduleQuery holds the common query parameters of the search
// endpoints. NotBefore defaults to midnight when omitted.
type ScheduleQuery struct {
	Origin      string `form:"origin" binding:"required"`
	Destination string `form:"destination" binding:"required"`
	DayType     string `form:"day_type" binding:"required"`
	NotBefore   string `form:"not_before"`
}

// CorridorQuery identifies the two fixed routes of a corridor search.
type CorridorQuery struct {
	RouteA    int64  `form:"route_a" binding:"required"`
	RouteB    int64  `form:"route_b" binding:"required"`
	DayType   string `form:"day_type" binding:"required"`
	NotBefore string `form:"not_before"`
}
