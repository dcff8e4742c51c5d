package models

// Line represents a transit operator/carrier owning routes
type Line struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	// Populated by detail queries only
	Routes []Route `json:"routes,omitempty"`
}

// CreateLineRequest is the payload for POST /lines
type CreateLineRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateLineRequest is the payload for PUT /lines/:id
type UpdateLineRequest struct {
	Name string `json:"name" binding:"required"`
}
