package handler

import (
	"time"

	"hr-portal-backend/internal/middleware"
	"hr-portal-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	svc *service.LeaveService
}

func NewLeaveHandler(svc *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{svc: svc}
}

type ApplyLeaveRequest struct {
	Type      string `json:"type" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason"`
}

// Apply submits a leave request for the caller. Dates are only parsed, not
// ordered or balance-checked: enforcement happens at approval.
func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	principal := middleware.GetPrincipal(c)

	var req ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_date must be in YYYY-MM-DD format"})
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must be in YYYY-MM-DD format"})
	}

	leave, err := h.svc.Apply(principal.EmployeeID, req.Type, start, end, req.Reason)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(leave)
}

// GetMy returns the caller's leave requests, newest application first.
func (h *LeaveHandler) GetMy(c *fiber.Ctx) error {
	principal := middleware.GetPrincipal(c)

	leaves, err := h.svc.History(principal.EmployeeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(leaves)
}

// GetAll returns every leave request with employee name/email. Admin-only via
// the route middleware.
func (h *LeaveHandler) GetAll(c *fiber.Ctx) error {
	leaves, err := h.svc.All()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(leaves)
}

// Approve processes a pending request and debits the owner's balance.
func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid leave id"})
	}

	leave, err := h.svc.Approve(uint(id))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "leave approved",
		"leave":   leave,
	})
}

// Reject processes a pending request without touching the balance.
func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid leave id"})
	}

	leave, err := h.svc.Reject(uint(id))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "leave rejected",
		"leave":   leave,
	})
}
