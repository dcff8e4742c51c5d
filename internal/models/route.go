package models

// Route is a directed origin->destination path belonging to one Line.
// Two lines may serve the same origin/destination pair; within one line
// the pair is unique.
type Route struct {
	ID          int64  `json:"id" db:"id"`
	Origin      string `json:"origin" db:"origin"`
	Destination string `json:"destination" db:"destination"`
	LineID      int64  `json:"line_id" db:"line_id"`
	LineName    string `json:"line_name,omitempty" db:"line_name"`

	Trips []Trip `json:"trips,omitempty"`
}

// CreateRouteRequest is the payload for POST /routes
type CreateRouteRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	LineID      int64  `json:"line_id" binding:"required"`
}

// RouteFilter holds the optional query filters for GET /routes
type RouteFilter struct {
	Origin      string `form:"origin"`
	Destination string `form:"destination"`
	LineID      int64  `form:"line_id"`
}
