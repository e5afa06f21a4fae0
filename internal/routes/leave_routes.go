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

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewLeaveRepository(db)
	svc := service.NewLeaveService(repo)
	hdl := handler.NewLeaveHandler(svc)

	api := app.Group("/api/leaves", middleware.Auth)

	// Employee
	api.Post("/", hdl.Apply)
	api.Get("/my", hdl.GetMy)

	// Admin
	api.Get("/all", middleware.Role(model.RoleAdmin), hdl.GetAll)
	api.Put("/:id/approve", middleware.Role(model.RoleAdmin), hdl.Approve)
	api.Put("/:id/reject", middleware.Role(model.RoleAdmin), hdl.Reject)
}
