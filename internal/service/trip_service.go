package service

import (
	"fmt"

	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/repository"
	"github.com/facuvd/horarios-backend-go/internal/timeutil"
)

// TripService handles business logic for trips
type TripService struct {
	trips  *repository.TripRepository
	routes *repository.RouteRepository
}

// NewTripService creates a new trip service
func NewTripService(trips *repository.TripRepository, routes *repository.RouteRepository) *TripService {
	return &TripService{trips: trips, routes: routes}
}

// GetTripsByRoute retrieves a route's trips, optionally filtered by day
// type.
func (s *TripService) GetTripsByRoute(routeID int64, dayType string) ([]models.Trip, error) {
	if dayType != "" && !models.ValidDayType(dayType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDayType, dayType)
	}

	route, err := s.routes.GetRouteByID(routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, fmt.Errorf("%w: route %d", ErrNotFound, routeID)
	}

	return s.trips.TripsByRoute(routeID, dayType)
}

// CreateTrip creates a trip on a route, enforcing the timetable
// invariants: valid day type, well-formed times, duration within
// bounds (wrapping past midnight) and a unique departure per route and
// day type.
func (s *TripService) CreateTrip(routeID int64, req models.CreateTripRequest) (*models.Trip, error) {
	if !models.ValidDayType(req.DayType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDayType, req.DayType)
	}

	dep, err := timeutil.ParseTimeOfDay(req.Departure)
	if err != nil {
		return nil, err
	}
	arr, err := timeutil.ParseTimeOfDay(req.Arrival)
	if err != nil {
		return nil, err
	}

	duration := timeutil.ElapsedMinutes(dep, arr)
	if duration < models.MinTripDurationMinutes {
		return nil, fmt.Errorf("%w: trip duration %d min is below the %d min minimum",
			ErrValidation, duration, models.MinTripDurationMinutes)
	}
	if duration > models.MaxTripDurationMinutes {
		return nil, fmt.Errorf("%w: trip duration %d min exceeds the %d min maximum",
			ErrValidation, duration, models.MaxTripDurationMinutes)
	}

	route, err := s.routes.GetRouteByID(routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, fmt.Errorf("%w: route %d", ErrNotFound, routeID)
	}

	exists, err := s.trips.DepartureExists(routeID, req.DayType, req.Departure)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: route %d already has a %s departure at %s",
			ErrConflict, routeID, req.DayType, req.Departure)
	}

	return s.trips.CreateTrip(routeID, req)
}

// DeleteTrip removes a trip
func (s *TripService) DeleteTrip(id int64) error {
	ok, err := s.trips.DeleteTrip(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: trip %d", ErrNotFound, id)
	}
	return nil
}
