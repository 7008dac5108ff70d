package enrollController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"placementpulse/gateway"
	"placementpulse/models"
	enrollValidator "placementpulse/validators/enroll"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupEnrollApp(t *testing.T, db *gorm.DB, gw *gateway.Client) *fiber.App {
	t.Helper()
	app := fiber.New()
	ctrl := NewController(db, gw)
	app.Post("/api/enroll", enrollValidator.Enroll(), ctrl.Enroll)
	app.Post("/api/enroll/multi-course", enrollValidator.EnrollMulti(), ctrl.EnrollMulti)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestEnrollEndpointSuccess(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "student@example.com")
	course := createCourse(t, db, "Case Interview Prep", 29900)

	gw := stubGateway(t, map[string]string{"order_1": paidOrder("order_1", "299.00")})
	app := setupEnrollApp(t, db, gw)

	resp, body := postJSON(t, app, "/api/enroll", fiber.Map{
		"user":         fiber.Map{"id": user.ID},
		"courseId":     course.ID,
		"verification": fiber.Map{"order_id": "order_1"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "Enrolled in course successfully!", body["message"])

	data := body["data"].(map[string]interface{})
	userData := data["user"].(map[string]interface{})
	assert.Equal(t, true, userData["enrolledCourse"])
}

func TestEnrollEndpointUnpaidOrder(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "student@example.com")
	course := createCourse(t, db, "Case Interview Prep", 29900)

	gw := stubGateway(t, map[string]string{"order_1": unpaidOrder("order_1")})
	app := setupEnrollApp(t, db, gw)

	resp, body := postJSON(t, app, "/api/enroll", fiber.Map{
		"user":         fiber.Map{"id": user.ID},
		"courseId":     course.ID,
		"verification": fiber.Map{"order_id": "order_1"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Payment not completed. Status: ACTIVE", body["message"])

	var enrollmentCount int64
	db.Model(&models.Enrollment{}).Count(&enrollmentCount)
	assert.Zero(t, enrollmentCount)
}

func TestEnrollEndpointUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "Case Interview Prep", 29900)

	gw := stubGateway(t, map[string]string{"order_1": paidOrder("order_1", "299.00")})
	app := setupEnrollApp(t, db, gw)

	resp, body := postJSON(t, app, "/api/enroll", fiber.Map{
		"user":         fiber.Map{"email": "nobody@example.com"},
		"courseId":     course.ID,
		"verification": fiber.Map{"order_id": "order_1"},
	})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found. Please sign up before enrolling!", body["message"])
}

func TestEnrollEndpointMissingVerification(t *testing.T) {
	db := setupTestDB(t)
	gw := stubGateway(t, map[string]string{})
	app := setupEnrollApp(t, db, gw)

	resp, body := postJSON(t, app, "/api/enroll", fiber.Map{
		"user":     fiber.Map{"email": "student@example.com"},
		"courseId": 1,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing payment verification!", body["message"])
}

func TestEnrollEndpointGatewayUnreachable(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "student@example.com")
	course := createCourse(t, db, "Case Interview Prep", 29900)

	// Point the client at a server that is already gone
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	gw := gateway.NewWithBaseURL("test-app", "test-secret", server.URL)

	app := setupEnrollApp(t, db, gw)

	resp, body := postJSON(t, app, "/api/enroll", fiber.Map{
		"user":         fiber.Map{"id": user.ID},
		"courseId":     course.ID,
		"verification": fiber.Map{"order_id": "order_1"},
	})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to verify payment with payment gateway!", body["message"])
}

func TestEnrollMultiEndpointInactiveCourse(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "student@example.com")
	active := createCourse(t, db, "Active Course", 9900)

	inactive := models.Course{Title: "Inactive Course", Price: 9900, IsActive: true}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)

	gw := stubGateway(t, map[string]string{"order_1": paidOrder("order_1", "199.00")})
	app := setupEnrollApp(t, db, gw)

	resp, body := postJSON(t, app, "/api/enroll/multi-course", fiber.Map{
		"user":         fiber.Map{"id": user.ID},
		"courseIds":    []uint{active.ID, inactive.ID},
		"verification": fiber.Map{"order_id": "order_1"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "One or more courses not found or inactive!", body["message"])
}

func TestEnrollMultiEndpointSuccess(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "student@example.com")

	courseIDs := make([]uint, 0, 3)
	for i := 1; i <= 3; i++ {
		course := createCourse(t, db, fmt.Sprintf("Course %d", i), 9900)
		courseIDs = append(courseIDs, course.ID)
	}

	gw := stubGateway(t, map[string]string{"order_1": paidOrder("order_1", "297.00")})
	app := setupEnrollApp(t, db, gw)

	resp, body := postJSON(t, app, "/api/enroll/multi-course", fiber.Map{
		"user":         fiber.Map{"id": user.ID},
		"courseIds":    courseIDs,
		"verification": fiber.Map{"order_id": "order_1"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Enrolled in courses successfully!", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Len(t, data["newCourses"], 3)

	var enrollmentCount int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollmentCount)
	assert.Equal(t, int64(3), enrollmentCount)
}
