package main

import (
	"log"
	"time"

	"vilcos/auth"
	"vilcos/booking"
	"vilcos/catalog"
	"vilcos/checkout"
	"vilcos/config"
	"vilcos/controller"
	"vilcos/database"
	"vilcos/route"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	db, err := database.Connect(cfg.DatabaseDSN, cfg.GinMode != "release")
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	catalogStore := catalog.NewStore(db)
	if err := catalogStore.SeedDefaults(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	ledger := booking.NewLedger(db, catalogStore)
	gateway := checkout.NewStripeGateway(cfg.StripeSecretKey)
	coordinator := checkout.NewCoordinator(gateway, ledger, cfg.PublicBaseURL)
	ctrl := controller.New(catalogStore, ledger, coordinator)
	authHandler := auth.NewHandler(db, cfg)

	router := gin.Default()

	origins := []string{"http://localhost:3000"}
	if cfg.AllowedOrigins != "" {
		origins = append(origins, cfg.AllowedOrigins)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.Register(router, ctrl, authHandler, cfg)
	log.Println("Routes configured successfully")

	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
