package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"            // .env loader for local development
	"github.com/labstack/echo/v4"         // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo built-in middleware

	"github.com/iliyamo/store-rating/internal/config"
	"github.com/iliyamo/store-rating/internal/database"
	"github.com/iliyamo/store-rating/internal/handler"
	"github.com/iliyamo/store-rating/internal/queue"
	"github.com/iliyamo/store-rating/internal/repository"
	"github.com/iliyamo/store-rating/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables caching, rate limiting and
	// token revocation but the API keeps working.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache, rate limit and token denylist disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	users := repository.NewUserRepo(db)
	stores := repository.NewStoreRepo(db)
	ratings := repository.NewRatingRepo(db)
	denylist := repository.NewTokenDenylist(rdb)

	authH := handler.NewAuthHandler(cfg, users, denylist)
	userH := handler.NewUserHandler(cfg, users)
	storeH := handler.NewStoreHandler(stores, ratings)
	ratingH := handler.NewRatingHandler(ratings)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret, denylist)
	router.RegisterUsers(e, userH, cfg.JWTSecret, denylist)
	router.RegisterStores(e, storeH, cfg.JWTSecret, denylist, rdb, cacheCfg, rlCfg)
	router.RegisterRatings(e, ratingH, cfg.JWTSecret, denylist)

	// Consume rating.submitted events in the background; the consumer
	// reconnects on its own and never takes the API down.
	go func() {
		if err := queue.StartRatingConsumer(); err != nil {
			log.Printf("rating consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
