package routes

import (
	"hr-portal-backend/internal/handler"
	"hr-portal-backend/internal/middleware"
	"hr-portal-backend/internal/repository"
	"hr-portal-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	svc := service.NewAuthService(repo)
	hdl := handler.NewAuthHandler(svc)

	api := app.Group("/api/auth")

	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
	api.Get("/me", middleware.Auth, hdl.Me)
}
