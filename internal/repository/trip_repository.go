package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/facuvd/horarios-backend-go/internal/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

const tripLegQuery = `SELECT t.id, t.day_type, t.departure, t.arrival, t.direct, t.route_id,
	r.origin, r.destination, l.name
	FROM trips t
	JOIN routes r ON r.id = t.route_id
	JOIN lines l ON l.id = r.line_id`

// TripsByLeg retrieves every trip on any route with the given endpoints
// and day type, ordered by departure time. Departure strings are
// zero-padded HH:MM, so lexicographic ORDER BY is chronological.
func (r *TripRepository) TripsByLeg(origin, destination, dayType string) ([]models.Trip, error) {
	query := tripLegQuery + `
		WHERE r.origin = ? AND r.destination = ? AND t.day_type = ?
		ORDER BY t.departure`

	rows, err := r.db.Query(query, origin, destination, dayType)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips by leg: %w", err)
	}
	defer rows.Close()

	return scanTrips(rows)
}

// TripsByRoute retrieves the trips of one route, optionally filtered by
// day type, ordered by day type then departure.
func (r *TripRepository) TripsByRoute(routeID int64, dayType string) ([]models.Trip, error) {
	query := tripLegQuery

	conditions := []string{"t.route_id = ?"}
	args := []interface{}{routeID}

	if dayType != "" {
		conditions = append(conditions, "t.day_type = ?")
		args = append(args, dayType)
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY t.day_type, t.departure"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips by route: %w", err)
	}
	defer rows.Close()

	return scanTrips(rows)
}

// GetTripByID retrieves a single trip. Returns nil when no trip has
// that id.
func (r *TripRepository) GetTripByID(id int64) (*models.Trip, error) {
	query := tripLegQuery + " WHERE t.id = ?"

	var t models.Trip
	err := r.db.QueryRow(query, id).Scan(
		&t.ID, &t.DayType, &t.Departure, &t.Arrival, &t.Direct, &t.RouteID,
		&t.Origin, &t.Destination, &t.LineName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &t, nil
}

// DepartureExists reports whether the route already has a trip at the
// given departure for the day type.
func (r *TripRepository) DepartureExists(routeID int64, dayType, departure string) (bool, error) {
	var n int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM trips WHERE route_id = ? AND day_type = ? AND departure = ?",
		routeID, dayType, departure,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check departure uniqueness: %w", err)
	}
	return n > 0, nil
}

// CreateTrip inserts a new trip and returns it with its assigned id
func (r *TripRepository) CreateTrip(routeID int64, req models.CreateTripRequest) (*models.Trip, error) {
	res, err := r.db.Exec(
		"INSERT INTO trips (day_type, departure, arrival, direct, route_id) VALUES (?, ?, ?, ?, ?)",
		req.DayType, req.Departure, req.Arrival, req.Direct, routeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get trip id: %w", err)
	}
	return &models.Trip{
		ID:        id,
		DayType:   req.DayType,
		Departure: req.Departure,
		Arrival:   req.Arrival,
		Direct:    req.Direct,
		RouteID:   routeID,
	}, nil
}

// DeleteTrip removes a trip. Returns false when no trip has that id.
func (r *TripRepository) DeleteTrip(id int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

func scanTrips(rows *sql.Rows) ([]models.Trip, error) {
	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		err := rows.Scan(
			&t.ID, &t.DayType, &t.Departure, &t.Arrival, &t.Direct, &t.RouteID,
			&t.Origin, &t.Destination, &t.LineName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}
