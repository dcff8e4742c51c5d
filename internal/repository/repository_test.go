package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facuvd/horarios-backend-go/internal/database"
	"github.com/facuvd/horarios-backend-go/internal/models"
)

// newTestDB opens an in-memory database with the full schema applied.
// A single connection keeps the in-memory database alive for the whole
// test.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)

	require.NoError(t, database.NewMigrationManager(db).Run())
	return db
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, database.NewMigrationManager(db).Run())
}

func TestRouteEndpointsAppearInDistinctLocations(t *testing.T) {
	db := newTestDB(t)
	lines := NewLineRepository(db)
	routes := NewRouteRepository(db)

	line, err := lines.CreateLine("Aconquija")
	require.NoError(t, err)

	_, err = routes.CreateRoute("Concepción", "San Miguel", line.ID)
	require.NoError(t, err)
	_, err = routes.CreateRoute("San Miguel", "Leales", line.ID)
	require.NoError(t, err)

	locations, err := routes.DistinctLocations()
	require.NoError(t, err)
	assert.Equal(t, []string{"Concepción", "Leales", "San Miguel"}, locations)
}

func TestTripsByLegOrderedByDeparture(t *testing.T) {
	db := newTestDB(t)
	lines := NewLineRepository(db)
	routes := NewRouteRepository(db)
	trips := NewTripRepository(db)

	line, err := lines.CreateLine("El Provincial")
	require.NoError(t, err)
	route, err := routes.CreateRoute("San Miguel", "Leales", line.ID)
	require.NoError(t, err)

	for _, dep := range []string{"14:00", "08:00", "21:30"} {
		_, err := trips.CreateTrip(route.ID, models.CreateTripRequest{
			DayType:   models.DayTypeWeekday,
			Departure: dep,
			Arrival:   "23:00",
		})
		require.NoError(t, err)
	}

	got, err := trips.TripsByLeg("San Miguel", "Leales", models.DayTypeWeekday)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "08:00", got[0].Departure)
	assert.Equal(t, "14:00", got[1].Departure)
	assert.Equal(t, "21:30", got[2].Departure)
	assert.Equal(t, "El Provincial", got[0].LineName)
	assert.Equal(t, "San Miguel", got[0].Origin)
	assert.Equal(t, "Leales", got[0].Destination)
}

func TestTripsByLegFiltersDayType(t *testing.T) {
	db := newTestDB(t)
	lines := NewLineRepository(db)
	routes := NewRouteRepository(db)
	trips := NewTripRepository(db)

	line, err := lines.CreateLine("Aconquija")
	require.NoError(t, err)
	route, err := routes.CreateRoute("Concepción", "San Miguel", line.ID)
	require.NoError(t, err)

	_, err = trips.CreateTrip(route.ID, models.CreateTripRequest{
		DayType: models.DayTypeWeekday, Departure: "07:00", Arrival: "07:40",
	})
	require.NoError(t, err)
	_, err = trips.CreateTrip(route.ID, models.CreateTripRequest{
		DayType: models.DayTypeSunday, Departure: "09:00", Arrival: "09:40",
	})
	require.NoError(t, err)

	got, err := trips.TripsByLeg("Concepción", "San Miguel", models.DayTypeSunday)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "09:00", got[0].Departure)
}

func TestRouteExists(t *testing.T) {
	db := newTestDB(t)
	lines := NewLineRepository(db)
	routes := NewRouteRepository(db)

	line, err := lines.CreateLine("Aconquija")
	require.NoError(t, err)
	_, err = routes.CreateRoute("Concepción", "San Miguel", line.ID)
	require.NoError(t, err)

	exists, err := routes.RouteExists("Concepción", "San Miguel")
	require.NoError(t, err)
	assert.True(t, exists)

	// Directed: the reverse pair is a different route
	exists, err = routes.RouteExists("San Miguel", "Concepción")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUniqueConstraints(t *testing.T) {
	db := newTestDB(t)
	lines := NewLineRepository(db)
	routes := NewRouteRepository(db)
	trips := NewTripRepository(db)

	line, err := lines.CreateLine("Aconquija")
	require.NoError(t, err)

	t.Run("duplicate line name", func(t *testing.T) {
		_, err := lines.CreateLine("Aconquija")
		assert.Error(t, err)
	})

	route, err := routes.CreateRoute("Concepción", "San Miguel", line.ID)
	require.NoError(t, err)

	t.Run("duplicate pair on the same line", func(t *testing.T) {
		_, err := routes.CreateRoute("Concepción", "San Miguel", line.ID)
		assert.Error(t, err)
	})

	t.Run("same pair on another line is allowed", func(t *testing.T) {
		other, err := lines.CreateLine("El Provincial")
		require.NoError(t, err)
		_, err = routes.CreateRoute("Concepción", "San Miguel", other.ID)
		assert.NoError(t, err)
	})

	t.Run("equal endpoints rejected by schema", func(t *testing.T) {
		_, err := routes.CreateRoute("Concepción", "Concepción", line.ID)
		assert.Error(t, err)
	})

	_, err = trips.CreateTrip(route.ID, models.CreateTripRequest{
		DayType: models.DayTypeWeekday, Departure: "07:00", Arrival: "07:40",
	})
	require.NoError(t, err)

	t.Run("departure exists", func(t *testing.T) {
		exists, err := trips.DepartureExists(route.ID, models.DayTypeWeekday, "07:00")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = trips.DepartureExists(route.ID, models.DayTypeSunday, "07:00")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate departure rejected by schema", func(t *testing.T) {
		_, err := trips.CreateTrip(route.ID, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "07:00", Arrival: "07:50",
		})
		assert.Error(t, err)
	})
}

func TestDeleteLineCascades(t *testing.T) {
	db := newTestDB(t)
	lines := NewLineRepository(db)
	routes := NewRouteRepository(db)
	trips := NewTripRepository(db)

	line, err := lines.CreateLine("Aconquija")
	require.NoError(t, err)
	route, err := routes.CreateRoute("Concepción", "San Miguel", line.ID)
	require.NoError(t, err)
	trip, err := trips.CreateTrip(route.ID, models.CreateTripRequest{
		DayType: models.DayTypeWeekday, Departure: "07:00", Arrival: "07:40",
	})
	require.NoError(t, err)

	ok, err := lines.DeleteLine(line.ID)
	require.NoError(t, err)
	require.True(t, ok)

	gotRoute, err := routes.GetRouteByID(route.ID)
	require.NoError(t, err)
	assert.Nil(t, gotRoute)

	gotTrip, err := trips.GetTripByID(trip.ID)
	require.NoError(t, err)
	assert.Nil(t, gotTrip)
}

func TestUserRoundTrip(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	missing, err := users.GetByUsername("nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := users.Create("fvd", "hash", models.RoleAdmin)
	require.NoError(t, err)

	got, err := users.GetByUsername("fvd")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, models.RoleAdmin, got.Role)
}
