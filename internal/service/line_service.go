package service

import (
	"fmt"

	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/repository"
)

// LineService handles business logic for lines
type LineService struct {
	repo *repository.LineRepository
}

// NewLineService creates a new line service
func NewLineService(repo *repository.LineRepository) *LineService {
	return &LineService{repo: repo}
}

// GetLines retrieves all lines
func (s *LineService) GetLines() ([]models.Line, error) {
	return s.repo.GetLines()
}

// GetLineByID retrieves one line with its routes
func (s *LineService) GetLineByID(id int64) (*models.Line, error) {
	line, err := s.repo.GetLineByID(id)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, fmt.Errorf("%w: line %d", ErrNotFound, id)
	}
	return line, nil
}

// CreateLine creates a line with a unique name
func (s *LineService) CreateLine(req models.CreateLineRequest) (*models.Line, error) {
	existing, err := s.repo.GetLineByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: line %q already exists", ErrConflict, req.Name)
	}
	return s.repo.CreateLine(req.Name)
}

// UpdateLine renames a line, keeping names unique
func (s *LineService) UpdateLine(id int64, req models.UpdateLineRequest) (*models.Line, error) {
	existing, err := s.repo.GetLineByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, fmt.Errorf("%w: line %q already exists", ErrConflict, req.Name)
	}

	ok, err := s.repo.UpdateLine(id, req.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: line %d", ErrNotFound, id)
	}
	return &models.Line{ID: id, Name: req.Name}, nil
}

// DeleteLine removes a line and everything it owns
func (s *LineService) DeleteLine(id int64) error {
	ok, err := s.repo.DeleteLine(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: line %d", ErrNotFound, id)
	}
	return nil
}
