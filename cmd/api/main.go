package main

import (
	"fmt"

	"hr-portal-backend/config"
	"hr-portal-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using system environment variables")
	}

	config.ConnectDB()

	app := fiber.New()

	// CORS must come before the routes.
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupLeaveRoutes(app, config.DB)

	addr := fmt.Sprintf(":%d", config.GetEnvAsInt("PORT", 5000))
	logrus.Infof("server listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
