package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	rediscache "relocation-estimate-service/internal/adapters/cache"
	"relocation-estimate-service/internal/adapters/repositories"
	"relocation-estimate-service/internal/api"
	"relocation-estimate-service/internal/config"
	"relocation-estimate-service/internal/platform/db"
	"relocation-estimate-service/internal/ports"
	"relocation-estimate-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/fleet.json")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}
	if err := repositories.SeedFromJSON(database, seedPath); err != nil {
		log.Fatal(err)
	}

	var fleetRepo ports.FleetRepository = repositories.NewPostgresFleetRepository(database)

	// With REDIS_ADDR set, assignment requests read the fleet through a
	// TTL'd snapshot cache instead of hitting Postgres every call.
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		ttl := config.GetDuration("FLEET_CACHE_TTL", 5*time.Minute)
		fleetRepo = repositories.NewCachedFleetRepository(
			fleetRepo,
			rediscache.NewRedisFleetCache(client, ttl),
		)
		log.Printf("fleet cache enabled addr=%s ttl=%s", addr, ttl)
	}

	blackoutRepo := repositories.NewPostgresBlackoutRepository(database)

	engine := services.NewPricingEngine(services.DefaultRateTable(), nil)
	validator := services.NewAvailabilityValidator(nil)

	router := api.NewRouter(engine, validator, fleetRepo, blackoutRepo)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
