package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facuvd/horarios-backend-go/internal/database"
	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/repository"
	"github.com/facuvd/horarios-backend-go/internal/timeutil"
)

func newTripService(t *testing.T) (*TripService, int64) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)
	require.NoError(t, database.NewMigrationManager(db).Run())

	lines := repository.NewLineRepository(db)
	routes := repository.NewRouteRepository(db)

	line, err := lines.CreateLine("Aconquija")
	require.NoError(t, err)
	route, err := routes.CreateRoute("Concepción", "San Miguel", line.ID)
	require.NoError(t, err)

	return NewTripService(repository.NewTripRepository(db), routes), route.ID
}

func TestCreateTripDurationBounds(t *testing.T) {
	svc, routeID := newTripService(t)

	t.Run("overnight trip wraps and passes", func(t *testing.T) {
		trip, err := svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "23:50", Arrival: "00:20",
		})
		require.NoError(t, err)
		assert.Equal(t, "23:50", trip.Departure)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "08:00", Arrival: "08:03",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "06:00", Arrival: "17:30",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("exactly at the bounds", func(t *testing.T) {
		_, err := svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "09:00", Arrival: "09:05",
		})
		assert.NoError(t, err)

		_, err = svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "07:00", Arrival: "17:00",
		})
		assert.NoError(t, err)
	})
}

func TestCreateTripValidation(t *testing.T) {
	svc, routeID := newTripService(t)

	t.Run("malformed departure", func(t *testing.T) {
		_, err := svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "8:00", Arrival: "09:00",
		})
		assert.ErrorIs(t, err, timeutil.ErrMalformedTime)
	})

	t.Run("invalid day type", func(t *testing.T) {
		_, err := svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: "lunes", Departure: "08:00", Arrival: "09:00",
		})
		assert.ErrorIs(t, err, ErrInvalidDayType)
	})

	t.Run("unknown route", func(t *testing.T) {
		_, err := svc.CreateTrip(999, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "08:00", Arrival: "09:00",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate departure", func(t *testing.T) {
		_, err := svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "10:00", Arrival: "11:00",
		})
		require.NoError(t, err)

		_, err = svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: models.DayTypeWeekday, Departure: "10:00", Arrival: "11:30",
		})
		assert.ErrorIs(t, err, ErrConflict)

		// Same departure on another day type is fine
		_, err = svc.CreateTrip(routeID, models.CreateTripRequest{
			DayType: models.DayTypeSunday, Departure: "10:00", Arrival: "11:00",
		})
		assert.NoError(t, err)
	})
}
