package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/facuvd/horarios-backend-go/internal/models"
)

// RouteRepository handles database operations for routes
type RouteRepository struct {
	db *sql.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// GetRoutes retrieves routes with optional filtering
func (r *RouteRepository) GetRoutes(filter models.RouteFilter) ([]models.Route, error) {
	query := `SELECT r.id, r.origin, r.destination, r.line_id, l.name
		FROM routes r
		JOIN lines l ON l.id = r.line_id`

	var conditions []string
	var args []interface{}

	if filter.Origin != "" {
		conditions = append(conditions, "r.origin = ?")
		args = append(args, filter.Origin)
	}
	if filter.Destination != "" {
		conditions = append(conditions, "r.destination = ?")
		args = append(args, filter.Destination)
	}
	if filter.LineID > 0 {
		conditions = append(conditions, "r.line_id = ?")
		args = append(args, filter.LineID)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY r.origin, r.destination, l.name"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var routes []models.Route
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.ID, &rt.Origin, &rt.Destination, &rt.LineID, &rt.LineName); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, rt)
	}

	return routes, rows.Err()
}

// GetRouteByID retrieves a single route with its line name. Returns nil
// when no route has that id.
func (r *RouteRepository) GetRouteByID(id int64) (*models.Route, error) {
	query := `SELECT r.id, r.origin, r.destination, r.line_id, l.name
		FROM routes r
		JOIN lines l ON l.id = r.line_id
		WHERE r.id = ?`

	var rt models.Route
	err := r.db.QueryRow(query, id).Scan(&rt.ID, &rt.Origin, &rt.Destination, &rt.LineID, &rt.LineName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return &rt, nil
}

// RouteExists reports whether any line serves the given origin and
// destination, regardless of day type.
func (r *RouteRepository) RouteExists(origin, destination string) (bool, error) {
	var n int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM routes WHERE origin = ? AND destination = ?",
		origin, destination,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check route existence: %w", err)
	}
	return n > 0, nil
}

// ExistsForLine reports whether the line already serves the pair.
func (r *RouteRepository) ExistsForLine(lineID int64, origin, destination string) (bool, error) {
	var n int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM routes WHERE line_id = ? AND origin = ? AND destination = ?",
		lineID, origin, destination,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check route uniqueness: %w", err)
	}
	return n > 0, nil
}

// DistinctLocations returns every location name that appears as a route
// origin or destination, sorted ascending.
func (r *RouteRepository) DistinctLocations() ([]string, error) {
	rows, err := r.db.Query(
		"SELECT origin FROM routes UNION SELECT destination FROM routes ORDER BY 1",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, name)
	}

	return locations, rows.Err()
}

// CreateRoute inserts a new route and returns it with its assigned id
func (r *RouteRepository) CreateRoute(origin, destination string, lineID int64) (*models.Route, error) {
	res, err := r.db.Exec(
		"INSERT INTO routes (origin, destination, line_id) VALUES (?, ?, ?)",
		origin, destination, lineID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get route id: %w", err)
	}
	return &models.Route{ID: id, Origin: origin, Destination: destination, LineID: lineID}, nil
}

// DeleteRoute removes a route and, via cascade, its trips. Returns
// false when no route has that id.
func (r *RouteRepository) DeleteRoute(id int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM routes WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete route: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}
