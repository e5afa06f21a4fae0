package main

import (
	"hr-portal-backend/config"
	"hr-portal-backend/internal/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using system environment variables")
	}

	config.ConnectDB()

	if err := database.SeedAdmin(config.DB); err != nil {
		logrus.WithError(err).Fatal("seeding failed")
	}
}
