package main

import (
	"fmt"
	"time"

	"courier-booking/config"
	"courier-booking/database"
	"courier-booking/logger"
	"courier-booking/routes"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to the database")
	}

	app := fiber.New(fiber.Config{
		AppName:      "courier-booking",
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, db, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.AppHost, cfg.AppPort)
	logger.Success("Server listening on " + addr)
	if err := app.Listen(addr); err != nil {
		logger.Fatal("Server stopped: " + err.Error())
	}
}
