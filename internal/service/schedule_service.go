package service

import (
	"fmt"
	"sort"

	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/timeutil"
)

// TripStore is the read-only trip lookup the search core depends on.
// Returned slices are ordered ascending by departure time.
type TripStore interface {
	TripsByLeg(origin, destination, dayType string) ([]models.Trip, error)
	TripsByRoute(routeID int64, dayType string) ([]models.Trip, error)
}

// RouteStore is the read-only route lookup the search core depends on.
type RouteStore interface {
	RouteExists(origin, destination string) (bool, error)
	DistinctLocations() ([]string, error)
}

// ScheduleService answers direct-trip and single-transfer connection
// queries over the stored timetable. It only reads; administrative
// writes go through the other services.
type ScheduleService struct {
	trips  TripStore
	routes RouteStore
}

// NewScheduleService creates a new schedule service
func NewScheduleService(trips TripStore, routes RouteStore) *ScheduleService {
	return &ScheduleService{trips: trips, routes: routes}
}

// FindDirect returns every trip from origin to destination on the given
// day type departing at or after notBefore, ascending by departure.
// notBefore defaults to "00:00" when empty.
func (s *ScheduleService) FindDirect(origin, destination, dayType, notBefore string) ([]models.Trip, error) {
	bound, err := parseBound(dayType, notBefore)
	if err != nil {
		return nil, err
	}

	trips, err := s.trips.TripsByLeg(origin, destination, dayType)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		exists, err := s.routes.RouteExists(origin, destination)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: no line serves %s to %s", ErrUnknownRoute, origin, destination)
		}
		return nil, fmt.Errorf("%w: no trips from %s to %s on %s days", ErrNotFound, origin, destination, dayType)
	}

	result := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		dep, err := timeutil.ParseTimeOfDay(t.Departure)
		if err != nil {
			return nil, fmt.Errorf("stored departure for trip %d: %w", t.ID, err)
		}
		if dep >= bound {
			result = append(result, t)
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no departures at or after %s", ErrNotFound, notBefore)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Departure < result[j].Departure
	})
	return result, nil
}

// FindConnections returns every single-transfer itinerary from origin
// to destination on the given day type whose first leg departs at or
// after notBefore, ascending by first-leg departure. Every known
// location except the endpoints is tried as a transfer point; for each
// first leg only the earliest compatible second leg is kept. Ordering
// between connections with equal first-leg departures is unspecified.
func (s *ScheduleService) FindConnections(origin, destination, dayType, notBefore string) ([]models.Connection, error) {
	bound, err := parseBound(dayType, notBefore)
	if err != nil {
		return nil, err
	}

	locations, err := s.routes.DistinctLocations()
	if err != nil {
		return nil, err
	}

	var connections []models.Connection
	for _, via := range locations {
		if via == origin || via == destination {
			continue
		}

		legA, err := s.trips.TripsByLeg(origin, via, dayType)
		if err != nil {
			return nil, err
		}
		if len(legA) == 0 {
			continue
		}
		legB, err := s.trips.TripsByLeg(via, destination, dayType)
		if err != nil {
			return nil, err
		}
		if len(legB) == 0 {
			continue
		}

		pairs, err := matchLegs(legA, legB, bound, via)
		if err != nil {
			return nil, err
		}
		connections = append(connections, pairs...)
	}

	if len(connections) == 0 {
		return nil, fmt.Errorf("%w: no connections from %s to %s on %s days at or after %s",
			ErrNotFound, origin, destination, dayType, notBefore)
	}

	sort.SliceStable(connections, func(i, j int) bool {
		return connections[i].Leg1Departure < connections[j].Leg1Departure
	})
	return connections, nil
}

// FindCorridorConnections is the degenerate variant of FindConnections
// for one fixed corridor: the transfer point is the shared endpoint of
// the two given routes, and only their trip sets are paired.
func (s *ScheduleService) FindCorridorConnections(routeA, routeB int64, dayType, notBefore string) ([]models.Connection, error) {
	bound, err := parseBound(dayType, notBefore)
	if err != nil {
		return nil, err
	}

	legA, err := s.trips.TripsByRoute(routeA, dayType)
	if err != nil {
		return nil, err
	}
	legB, err := s.trips.TripsByRoute(routeB, dayType)
	if err != nil {
		return nil, err
	}
	if len(legA) == 0 || len(legB) == 0 {
		return nil, fmt.Errorf("%w: no trips on the corridor routes for %s days", ErrNotFound, dayType)
	}

	connections, err := matchLegs(legA, legB, bound, legA[0].Destination)
	if err != nil {
		return nil, err
	}
	if len(connections) == 0 {
		return nil, fmt.Errorf("%w: no corridor connections at or after %s", ErrNotFound, notBefore)
	}

	sort.SliceStable(connections, func(i, j int) bool {
		return connections[i].Leg1Departure < connections[j].Leg1Departure
	})
	return connections, nil
}

// Locations returns every known location name, sorted ascending.
func (s *ScheduleService) Locations() ([]string, error) {
	return s.routes.DistinctLocations()
}

// matchLegs pairs each first leg departing at or after bound with the
// earliest second leg departing strictly after the first leg arrives.
// At most one pairing per first leg. Comparison is same-day wall clock:
// a first leg arriving past midnight is never paired. That asymmetry
// with the duration check is deliberate.
func matchLegs(legA, legB []models.Trip, bound int, via string) ([]models.Connection, error) {
	var connections []models.Connection
	for _, a := range legA {
		dep, err := timeutil.ParseTimeOfDay(a.Departure)
		if err != nil {
			return nil, fmt.Errorf("stored departure for trip %d: %w", a.ID, err)
		}
		if dep < bound {
			continue
		}
		arr, err := timeutil.ParseTimeOfDay(a.Arrival)
		if err != nil {
			return nil, fmt.Errorf("stored arrival for trip %d: %w", a.ID, err)
		}

		for _, b := range legB {
			depB, err := timeutil.ParseTimeOfDay(b.Departure)
			if err != nil {
				return nil, fmt.Errorf("stored departure for trip %d: %w", b.ID, err)
			}
			if depB > arr {
				connections = append(connections, models.Connection{
					Via:           via,
					Leg1Departure: a.Departure,
					Leg1Arrival:   a.Arrival,
					Leg1Line:      a.LineName,
					Leg2Departure: b.Departure,
					Leg2Arrival:   b.Arrival,
					Leg2Line:      b.LineName,
					WaitMinutes:   depB - arr,
				})
				break
			}
		}
	}
	return connections, nil
}

// parseBound validates the day type and the not-before bound, returning
// the bound as minutes since midnight. An empty bound means midnight.
func parseBound(dayType, notBefore string) (int, error) {
	if !models.ValidDayType(dayType) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayType, dayType)
	}
	if notBefore == "" {
		return 0, nil
	}
	return timeutil.ParseTimeOfDay(notBefore)
}
