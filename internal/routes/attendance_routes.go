package routes

import (
	"hr-portal-backend/internal/handler"
	"hr-portal-backend/internal/middleware"
	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/repository"
	"hr-portal-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAttendanceRepository(db)
	svc := service.NewAttendanceService(repo)
	hdl := handler.NewAttendanceHandler(svc)

	api := app.Group("/api/attendance", middleware.Auth)

	// Employee
	api.Post("/", hdl.Mark)
	api.Get("/my", hdl.GetMy)

	// Admin
	api.Get("/all", middleware.Role(model.RoleAdmin), hdl.GetAll)
}
