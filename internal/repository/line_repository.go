package repository

import (
	"database/sql"
	"fmt"

	"github.com/facuvd/horarios-backend-go/internal/models"
)

// LineRepository handles database operations for lines
type LineRepository struct {
	db *sql.DB
}

// NewLineRepository creates a new line repository
func NewLineRepository(db *sql.DB) *LineRepository {
	return &LineRepository{db: db}
}

// GetLines retrieves all lines ordered by name
func (r *LineRepository) GetLines() ([]models.Line, error) {
	rows, err := r.db.Query("SELECT id, name FROM lines ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query lines: %w", err)
	}
	defer rows.Close()

	var lines []models.Line
	for rows.Next() {
		var l models.Line
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("failed to scan line: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

// GetLineByID retrieves a single line with its routes. Returns nil when
// no line has that id.
func (r *LineRepository) GetLineByID(id int64) (*models.Line, error) {
	var l models.Line
	err := r.db.QueryRow("SELECT id, name FROM lines WHERE id = ?", id).Scan(&l.ID, &l.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get line: %w", err)
	}

	rows, err := r.db.Query(
		"SELECT id, origin, destination, line_id FROM routes WHERE line_id = ? ORDER BY origin, destination",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query line routes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.ID, &rt.Origin, &rt.Destination, &rt.LineID); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		l.Routes = append(l.Routes, rt)
	}

	return &l, rows.Err()
}

// GetLineByName retrieves a line by its unique name. Returns nil when
// no line has that name.
func (r *LineRepository) GetLineByName(name string) (*models.Line, error) {
	var l models.Line
	err := r.db.QueryRow("SELECT id, name FROM lines WHERE name = ?", name).Scan(&l.ID, &l.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get line by name: %w", err)
	}
	return &l, nil
}

// CreateLine inserts a new line and returns it with its assigned id
func (r *LineRepository) CreateLine(name string) (*models.Line, error) {
	res, err := r.db.Exec("INSERT INTO lines (name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("failed to create line: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get line id: %w", err)
	}
	return &models.Line{ID: id, Name: name}, nil
}

// UpdateLine renames a line. Returns false when no line has that id.
func (r *LineRepository) UpdateLine(id int64, name string) (bool, error) {
	res, err := r.db.Exec("UPDATE lines SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return false, fmt.Errorf("failed to update line: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

// DeleteLine removes a line and, via cascade, its routes and trips.
// Returns false when no line has that id.
func (r *LineRepository) DeleteLine(id int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM lines WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete line: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}
