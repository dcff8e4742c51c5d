package service

import (
	"fmt"

	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/repository"
)

// RouteService handles business logic for routes
type RouteService struct {
	routes *repository.RouteRepository
	lines  *repository.LineRepository
}

// NewRouteService creates a new route service
func NewRouteService(routes *repository.RouteRepository, lines *repository.LineRepository) *RouteService {
	return &RouteService{routes: routes, lines: lines}
}

// GetRoutes retrieves routes with optional filtering
func (s *RouteService) GetRoutes(filter models.RouteFilter) ([]models.Route, error) {
	return s.routes.GetRoutes(filter)
}

// GetRouteByID retrieves one route
func (s *RouteService) GetRouteByID(id int64) (*models.Route, error) {
	route, err := s.routes.GetRouteByID(id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, fmt.Errorf("%w: route %d", ErrNotFound, id)
	}
	return route, nil
}

// CreateRoute creates a route, enforcing that the endpoints differ, the
// line exists and the line does not already serve the pair.
func (s *RouteService) CreateRoute(req models.CreateRouteRequest) (*models.Route, error) {
	if req.Origin == req.Destination {
		return nil, fmt.Errorf("%w: origin and destination must differ", ErrValidation)
	}

	line, err := s.lines.GetLineByID(req.LineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, fmt.Errorf("%w: line %d", ErrNotFound, req.LineID)
	}

	exists, err := s.routes.ExistsForLine(req.LineID, req.Origin, req.Destination)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: line %q already serves %s to %s",
			ErrConflict, line.Name, req.Origin, req.Destination)
	}

	route, err := s.routes.CreateRoute(req.Origin, req.Destination, req.LineID)
	if err != nil {
		return nil, err
	}
	route.LineName = line.Name
	return route, nil
}

// DeleteRoute removes a route and its trips
func (s *RouteService) DeleteRoute(id int64) error {
	ok, err := s.routes.DeleteRoute(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: route %d", ErrNotFound, id)
	}
	return nil
}
