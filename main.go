package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"elevate/config"
	authController "elevate/controllers/auth"
	elevatorController "elevate/controllers/elevator"
	"elevate/database"
	"elevate/repository"
	"elevate/routers/authRoutes"
	"elevate/routers/elevatorRoutes"
	"elevate/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	var repo repository.ElevatorRepository
	switch cfg.Storage {
	case "json":
		repo = repository.NewJSONElevatorRepository(cfg.DataFile)
	case "db":
		repo, err = repository.NewGormElevatorRepository(db)
		if err != nil {
			log.Fatalf("Failed to set up elevator storage: %v", err)
		}
	default:
		log.Fatalf("Unsupported STORAGE %q (want json or db)", cfg.Storage)
	}
	log.Printf("Storage backend: %s (ownership enforcement: %v)", cfg.Storage, repo.EnforcesOwnership())

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRoutes.SetupAuthRoutes(app, authController.New(db, cfg), cfg)
	elevatorRoutes.SetupElevatorRoutes(app, elevatorController.New(repo), cfg)

	stats := utils.StartStatsLogger(repo)
	defer stats.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
