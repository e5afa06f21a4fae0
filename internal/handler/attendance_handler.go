package handler

import (
	"time"

	"hr-portal-backend/internal/middleware"
	"hr-portal-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	svc *service.AttendanceService
}

func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

type MarkAttendanceRequest struct {
	Date   string `json:"date"` // optional, YYYY-MM-DD, defaults to today
	Status string `json:"status" validate:"required,oneof=Present Absent"`
}

// Mark records today's (or the posted day's) attendance for the caller. The
// target employee is always the principal, never a body field.
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	principal := middleware.GetPrincipal(c)

	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
		}
		date = parsed
	}

	record, err := h.svc.Mark(principal.EmployeeID, date, req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetMy returns the caller's attendance history, newest first.
func (h *AttendanceHandler) GetMy(c *fiber.Ctx) error {
	principal := middleware.GetPrincipal(c)

	records, err := h.svc.History(principal.EmployeeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(records)
}

// GetAll returns every attendance record with employee name/email. Admin-only
// via the route middleware.
func (h *AttendanceHandler) GetAll(c *fiber.Ctx) error {
	records, err := h.svc.All()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(records)
}
