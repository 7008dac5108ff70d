package adminController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"placementpulse/config"
	"placementpulse/database"
	"placementpulse/middleware"
	"placementpulse/models"
	adminValidator "placementpulse/validators/admin"
	courseValidator "placementpulse/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAdminTest(t *testing.T) (*gorm.DB, *fiber.App, string) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	adminGroup := app.Group("/api/admin", middleware.AdminMiddleware)

	adminGroup.Post("/courses", adminValidator.CreateCourse(), CreateCourse)
	adminGroup.Get("/courses", adminValidator.ListQuery(), GetAllCourses)
	adminGroup.Get("/courses/:id", courseValidator.CourseID(), GetCourse)
	adminGroup.Put("/courses/:id", courseValidator.CourseID(), adminValidator.UpdateCourse(), UpdateCourse)
	adminGroup.Delete("/courses/:id", courseValidator.CourseID(), DeleteCourse)
	adminGroup.Post("/courses/:id/materials", courseValidator.CourseID(), adminValidator.CreateMaterial(), CreateMaterial)
	adminGroup.Post("/announcements", adminValidator.CreateAnnouncement(), CreateAnnouncement)
	adminGroup.Delete("/announcements/:id", adminValidator.EntityID("id", "announcementID"), DeactivateAnnouncement)
	adminGroup.Post("/gd-topics", adminValidator.GDTopic(), CreateGDTopic)
	adminGroup.Get("/students", adminValidator.ListQuery(), GetStudents)
	adminGroup.Delete("/students/:id", adminValidator.EntityID("id", "studentID"), DeleteStudent)
	adminGroup.Post("/students/:id/enrollments", adminValidator.EntityID("id", "studentID"), adminValidator.EnrollStudent(), EnrollStudent)
	adminGroup.Get("/payments", adminValidator.ListQuery(), GetPayments)
	adminGroup.Get("/pending-enrollments", adminValidator.ListQuery(), GetPendingEnrollments)

	token, err := middleware.GenerateAdminJWT("admin@example.com")
	require.NoError(t, err)

	return db, app, token
}

func adminRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AdminCookie, Value: token})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestAdminRoutesRequireSession(t *testing.T) {
	_, app, _ := setupAdminTest(t)

	resp, _ := adminRequest(t, app, http.MethodGet, "/api/admin/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminCourseLifecycle(t *testing.T) {
	db, app, token := setupAdminTest(t)

	// Validation first
	resp, _ := adminRequest(t, app, http.MethodPost, "/api/admin/courses", token, fiber.Map{"title": "X"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body := adminRequest(t, app, http.MethodPost, "/api/admin/courses", token, fiber.Map{
		"title":         "Case Interview Prep",
		"description":   "Frameworks and drills",
		"price":         29900,
		"originalPrice": 49900,
		"discount":      40,
		"duration":      "6 weeks",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	courseID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	resp, body = adminRequest(t, app, http.MethodPut, fmt.Sprintf("/api/admin/courses/%d", courseID), token, fiber.Map{
		"price":    19900,
		"isActive": false,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var course models.Course
	require.NoError(t, db.First(&course, courseID).Error)
	assert.Equal(t, uint(19900), course.Price)
	assert.False(t, course.IsActive)

	// Admin list still shows the now-inactive course
	resp, body = adminRequest(t, app, http.MethodGet, "/api/admin/courses", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	courses := body["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 1)

	resp, _ = adminRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/courses/%d", courseID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = adminRequest(t, app, http.MethodGet, fmt.Sprintf("/api/admin/courses/%d", courseID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = adminRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/courses/%d", courseID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminEnrollStudent(t *testing.T) {
	db, app, token := setupAdminTest(t)

	student := models.User{Name: "Test Student", Email: "student@example.com", PasswordHash: "hashed"}
	require.NoError(t, db.Create(&student).Error)
	course := models.Course{Title: "Case Interview Prep", Price: 29900, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	path := fmt.Sprintf("/api/admin/students/%d/enrollments", student.ID)

	resp, body := adminRequest(t, app, http.MethodPost, path, token, fiber.Map{"courseId": course.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["enrolledCourse"])

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", student.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, models.AdminEnrolledTxn, enrollment.TransactionID)

	var updated models.User
	require.NoError(t, db.First(&updated, student.ID).Error)
	assert.True(t, updated.BypassPayment)

	// Second push conflicts
	resp, _ = adminRequest(t, app, http.MethodPost, path, token, fiber.Map{"courseId": course.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Unknown course
	resp, _ = adminRequest(t, app, http.MethodPost, path, token, fiber.Map{"courseId": 999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unknown student
	resp, _ = adminRequest(t, app, http.MethodPost, "/api/admin/students/999/enrollments", token, fiber.Map{"courseId": course.ID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminStudentSearchAndDelete(t *testing.T) {
	db, app, token := setupAdminTest(t)

	for _, email := range []string{"alpha@example.com", "beta@example.com", "gamma@other.org"} {
		require.NoError(t, db.Create(&models.User{Name: "S", Email: email, PasswordHash: "hashed"}).Error)
	}

	resp, body := adminRequest(t, app, http.MethodGet, "/api/admin/students?search=example.com", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	students := body["data"].(map[string]interface{})["students"].([]interface{})
	assert.Len(t, students, 2)

	var victim models.User
	require.NoError(t, db.Where("email = ?", "beta@example.com").First(&victim).Error)

	resp, _ = adminRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/students/%d", victim.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = adminRequest(t, app, http.MethodGet, "/api/admin/students?search=example.com", token, nil)
	students = body["data"].(map[string]interface{})["students"].([]interface{})
	assert.Len(t, students, 1)
}

func TestAdminCreateMaterial(t *testing.T) {
	db, app, token := setupAdminTest(t)

	course := models.Course{Title: "Case Interview Prep", Price: 29900, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	resp, _ := adminRequest(t, app, http.MethodPost, "/api/admin/courses/999/materials", token, fiber.Map{
		"title": "Cheat Sheet",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := adminRequest(t, app, http.MethodPost, fmt.Sprintf("/api/admin/courses/%d/materials", course.ID), token, fiber.Map{
		"title":       "Cheat Sheet",
		"description": "One-pager",
		"fileUrl":     "/uploads/cheat-sheet.pdf",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Cheat Sheet", body["data"].(map[string]interface{})["title"])

	var count int64
	db.Model(&models.Material{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminAnnouncements(t *testing.T) {
	db, app, token := setupAdminTest(t)

	// Broadcast needs no course
	resp, body := adminRequest(t, app, http.MethodPost, "/api/admin/announcements", token, fiber.Map{
		"title":   "Platform Maintenance",
		"message": "Down on Sunday night",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Nil(t, body["data"].(map[string]interface{})["courseId"])

	// Course-scoped announcement validates the course
	resp, _ = adminRequest(t, app, http.MethodPost, "/api/admin/announcements", token, fiber.Map{
		"courseId": 999,
		"title":    "Scoped",
		"message":  "m",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var announcement models.Announcement
	require.NoError(t, db.Where("title = ?", "Platform Maintenance").First(&announcement).Error)

	resp, _ = adminRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/announcements/%d", announcement.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&announcement, announcement.ID).Error)
	assert.False(t, announcement.IsActive)
}

func TestAdminCreateGDTopic(t *testing.T) {
	db, app, token := setupAdminTest(t)

	resp, _ := adminRequest(t, app, http.MethodPost, "/api/admin/gd-topics", token, fiber.Map{
		"title":       "AI in Hiring",
		"description": "Should companies screen with AI?",
		"category":    "Astrology",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = adminRequest(t, app, http.MethodPost, "/api/admin/gd-topics", token, fiber.Map{
		"title":       "AI in Hiring",
		"description": "Should companies screen with AI?",
		"category":    "Technology",
		"tags":        []string{"ai", "recruiting"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var topic models.GDTopic
	require.NoError(t, db.Where("title = ?", "AI in Hiring").First(&topic).Error)
	assert.Equal(t, "Medium", topic.Difficulty) // default when omitted
	assert.Equal(t, "admin@example.com", topic.CreatedBy)
}

func TestAdminPaymentsAndPendingFilters(t *testing.T) {
	db, app, token := setupAdminTest(t)

	require.NoError(t, db.Create(&models.Payment{Email: "a@example.com", OrderID: "order_a", Amount: 100, Status: models.PaymentStatusPaid}).Error)
	require.NoError(t, db.Create(&models.Payment{Email: "b@example.com", OrderID: "order_b", Amount: 200, Status: models.PaymentStatusPaid}).Error)

	resp, body := adminRequest(t, app, http.MethodGet, "/api/admin/payments?email=a@example.com", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payments := body["data"].(map[string]interface{})["payments"].([]interface{})
	require.Len(t, payments, 1)
	assert.Equal(t, "order_a", payments[0].(map[string]interface{})["orderId"])

	pendingRow := models.PendingEnrollment{OrderID: "order_p", Email: "a@example.com", Status: models.PendingEnrollmentPending}
	require.NoError(t, pendingRow.SetCourseIDs([]uint{1}))
	require.NoError(t, db.Create(&pendingRow).Error)

	abandonedRow := models.PendingEnrollment{OrderID: "order_q", Email: "b@example.com", Status: models.PendingEnrollmentAbandoned}
	require.NoError(t, abandonedRow.SetCourseIDs([]uint{1}))
	require.NoError(t, db.Create(&abandonedRow).Error)

	resp, body = adminRequest(t, app, http.MethodGet, "/api/admin/pending-enrollments?status=abandoned", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	pending := body["data"].(map[string]interface{})["pending"].([]interface{})
	require.Len(t, pending, 1)
	assert.Equal(t, "order_q", pending[0].(map[string]interface{})["orderId"])
}
