package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the full ordered schema history, embedded so the binary
// needs no migrations directory on disk.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_lines",
		SQL: `
			CREATE TABLE IF NOT EXISTS lines (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL UNIQUE
			);
		`,
	},
	{
		Version: 2,
		Name:    "create_routes",
		SQL: `
			CREATE TABLE IF NOT EXISTS routes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				origin TEXT NOT NULL,
				destination TEXT NOT NULL,
				line_id INTEGER NOT NULL REFERENCES lines(id) ON DELETE CASCADE,
				UNIQUE(line_id, origin, destination),
				CHECK(origin <> destination)
			);
			CREATE INDEX IF NOT EXISTS idx_routes_endpoints ON routes(origin, destination);
		`,
	},
	{
		Version: 3,
		Name:    "create_trips",
		SQL: `
			CREATE TABLE IF NOT EXISTS trips (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				day_type TEXT NOT NULL,
				departure TEXT NOT NULL,
				arrival TEXT NOT NULL,
				direct INTEGER NOT NULL DEFAULT 0,
				route_id INTEGER NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
				UNIQUE(route_id, day_type, departure)
			);
			CREATE INDEX IF NOT EXISTS idx_trips_route_day ON trips(route_id, day_type);
		`,
	},
	{
		Version: 4,
		Name:    "create_users",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				role TEXT NOT NULL
			);
		`,
	},
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db *sql.DB
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *sql.DB) *MigrationManager {
	return &MigrationManager{db: db}
}

// InitMigrationsTable creates the migrations tracking table
func (m *MigrationManager) InitMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := m.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// GetAppliedMigrations returns the set of applied migration versions
func (m *MigrationManager) GetAppliedMigrations() (map[int]bool, error) {
	rows, err := m.db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, nil
}

// Run applies all pending migrations in version order
func (m *MigrationManager) Run() error {
	if err := m.InitMigrationsTable(); err != nil {
		return err
	}

	applied, err := m.GetAppliedMigrations()
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, mig := range migrations {
		if !applied[mig.Version] {
			pending = append(pending, mig)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	for _, mig := range pending {
		err := Transaction(m.db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(mig.SQL); err != nil {
				return fmt.Errorf("failed to apply migration %d (%s): %w", mig.Version, mig.Name, err)
			}
			if _, err := tx.Exec(
				"INSERT INTO migrations (version, name) VALUES (?, ?)",
				mig.Version, mig.Name,
			); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", mig.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Printf("Applied migration %d: %s", mig.Version, mig.Name)
	}

	return nil
}
