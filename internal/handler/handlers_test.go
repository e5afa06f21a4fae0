package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-portal-backend/internal/database"
	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Employee{},
		&model.AttendanceRecord{},
		&model.LeaveRequest{},
	))

	app := fiber.New()
	routes.SetupAuthRoutes(app, db)
	routes.SetupAttendanceRoutes(app, db)
	routes.SetupLeaveRoutes(app, db)
	return app, db
}

// doJSON fires a request and decodes the JSON response into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints that return a top-level array.
func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func registerAndLogin(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func loginAdmin(t *testing.T, app *fiber.App, db *gorm.DB) string {
	t.Helper()
	require.NoError(t, database.SeedAdmin(db))

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "admin@test.com", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestMe_ReturnsOwnRecord(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "Jordan", "jordan@test.com")

	status, body := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "jordan@test.com", body["email"])
	assert.EqualValues(t, 20, body["leave_balance"])
	_, leaked := body["password"]
	assert.False(t, leaked)
}

func TestRegister_DuplicateEmailRefused(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "A", "email": "a@test.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "B", "email": "a@test.com", "password": "secret456",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "EMAIL_TAKEN", body["code"])
}

func TestMarkAttendance_Flow(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "Jordan", "jordan@test.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/attendance/", token, fiber.Map{
		"status": "Present",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Present", body["status"])

	// Duplicate for the same day.
	status, body = doJSON(t, app, http.MethodPost, "/api/attendance/", token, fiber.Map{
		"status": "Absent",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "DUPLICATE_RECORD", body["code"])
	assert.Equal(t, "attendance already marked today", body["error"])

	status, records := doJSONList(t, app, http.MethodGet, "/api/attendance/my", token)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, records, 1)
}

func TestMarkAttendance_FutureDate(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "Jordan", "jordan@test.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/attendance/", token, fiber.Map{
		"date": "2999-01-01", "status": "Present",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "FUTURE_DATE", body["code"])
	assert.Equal(t, "cannot mark attendance for future dates", body["error"])
}

func TestMarkAttendance_StatusValidated(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "Jordan", "jordan@test.com")

	status, _ := doJSON(t, app, http.MethodPost, "/api/attendance/", token, fiber.Map{
		"status": "Late",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAttendance_RequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/attendance/", "", fiber.Map{
		"status": "Present",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminEndpoints_ForbiddenForEmployee(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "Jordan", "jordan@test.com")

	status, _ := doJSON(t, app, http.MethodGet, "/api/attendance/all", token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/leaves/all", token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, app, http.MethodPut, "/api/leaves/1/approve", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestLeaveApproval_Flow(t *testing.T) {
	app, db := newTestApp(t)
	empToken := registerAndLogin(t, app, "Jordan", "jordan@test.com")
	adminToken := loginAdmin(t, app, db)

	status, leave := doJSON(t, app, http.MethodPost, "/api/leaves/", empToken, fiber.Map{
		"type":       "Annual",
		"start_date": "2024-04-01",
		"end_date":   "2024-04-03",
		"reason":     "family trip",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.EqualValues(t, 3, leave["total_days"])
	assert.Equal(t, "Pending", leave["status"])

	leaveID := int(leave["ID"].(float64))

	status, body := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/leaves/%d/approve", leaveID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "leave approved", body["message"])

	// Terminal: a second approve and a reject both fail.
	status, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/leaves/%d/approve", leaveID), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "ALREADY_PROCESSED", body["code"])

	status, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/leaves/%d/reject", leaveID), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "ALREADY_PROCESSED", body["code"])

	// Balance went from the default 20 to 17.
	var emp model.Employee
	require.NoError(t, db.Where("email = ?", "jordan@test.com").First(&emp).Error)
	assert.Equal(t, 17, emp.LeaveBalance)
}

func TestLeaveApproval_NotFound(t *testing.T) {
	app, db := newTestApp(t)
	adminToken := loginAdmin(t, app, db)

	status, body := doJSON(t, app, http.MethodPut, "/api/leaves/9999/approve", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "leave not found", body["error"])
}

func TestLeaveReject_BalanceNeutral(t *testing.T) {
	app, db := newTestApp(t)
	empToken := registerAndLogin(t, app, "Jordan", "jordan@test.com")
	adminToken := loginAdmin(t, app, db)

	status, leave := doJSON(t, app, http.MethodPost, "/api/leaves/", empToken, fiber.Map{
		"type":       "Annual",
		"start_date": "2024-04-01",
		"end_date":   "2024-04-05",
		"reason":     "trip",
	})
	require.Equal(t, http.StatusCreated, status)
	leaveID := int(leave["ID"].(float64))

	status, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/leaves/%d/reject", leaveID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	var emp model.Employee
	require.NoError(t, db.Where("email = ?", "jordan@test.com").First(&emp).Error)
	assert.Equal(t, 20, emp.LeaveBalance)
}

func TestListAll_IncludesEmployeeIdentity(t *testing.T) {
	app, db := newTestApp(t)
	empToken := registerAndLogin(t, app, "Jordan", "jordan@test.com")
	adminToken := loginAdmin(t, app, db)

	status, _ := doJSON(t, app, http.MethodPost, "/api/attendance/", empToken, fiber.Map{
		"status": "Present",
	})
	require.Equal(t, http.StatusCreated, status)

	status, records := doJSONList(t, app, http.MethodGet, "/api/attendance/all", adminToken)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, records, 1)

	employee, ok := records[0]["employee"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jordan", employee["name"])
	assert.Equal(t, "jordan@test.com", employee["email"])
	_, leaked := employee["password"]
	assert.False(t, leaked, "password hash never serialized")
}
