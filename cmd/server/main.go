package main

import (
	"log"
	"time"

	"github.com/facuvd/horarios-backend-go/internal/api"
	"github.com/facuvd/horarios-backend-go/internal/auth"
	"github.com/facuvd/horarios-backend-go/internal/config"
	"github.com/facuvd/horarios-backend-go/internal/database"
	"github.com/facuvd/horarios-backend-go/internal/handler"
	"github.com/facuvd/horarios-backend-go/internal/repository"
	"github.com/facuvd/horarios-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.NewMigrationManager(db).Run(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	lineRepo := repository.NewLineRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	tripRepo := repository.NewTripRepository(db)
	userRepo := repository.NewUserRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireMinutes)*time.Minute)

	handlers := api.Handlers{
		Schedules: handler.NewScheduleHandler(service.NewScheduleService(tripRepo, routeRepo)),
		Lines:     handler.NewLineHandler(service.NewLineService(lineRepo)),
		Routes:    handler.NewRouteHandler(service.NewRouteService(routeRepo, lineRepo)),
		Trips:     handler.NewTripHandler(service.NewTripService(tripRepo, routeRepo)),
		Auth:      handler.NewAuthHandler(service.NewUserService(userRepo), tokens),
		Tokens:    tokens,
	}

	router := api.SetupRouter(cfg, handlers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
