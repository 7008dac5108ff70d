package courseController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"placementpulse/config"
	"placementpulse/database"
	"placementpulse/middleware"
	"placementpulse/models"
	validators "placementpulse/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCourseTest(t *testing.T) *gorm.DB {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func setupCourseApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/api/courses", GetAllCourses)
	app.Get("/api/courses/:id", validators.CourseID(), GetCourseDetails)
	app.Get("/api/courses/:id/price", validators.CourseID(), GetCoursePrice)
	app.Get("/api/courses/:id/materials", middleware.JWTMiddleware, validators.CourseID(), GetCourseMaterials)
	app.Get("/api/courses/:id/announcements", middleware.JWTMiddleware, validators.CourseID(), GetCourseAnnouncements)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path, token string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func studentToken(t *testing.T, db *gorm.DB) (uint, string) {
	t.Helper()
	user := models.User{Name: "Test Student", Email: "student@example.com", PasswordHash: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)
	return user.ID, token
}

func TestGetAllCoursesFiltersCatalog(t *testing.T) {
	db := setupCourseTest(t)
	app := setupCourseApp(t)

	require.NoError(t, db.Create(&models.Course{Title: "Active", Price: 9900, IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Course{Title: "Removed", Price: 9900, IsActive: true, IsDeleted: true}).Error)

	hidden := models.Course{Title: "Hidden", Price: 9900, IsActive: true}
	require.NoError(t, db.Create(&hidden).Error)
	require.NoError(t, db.Model(&hidden).Update("is_active", false).Error)

	resp, body := getJSON(t, app, "/api/courses", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	courses := body["data"].([]interface{})
	require.Len(t, courses, 1)
	assert.Equal(t, "Active", courses[0].(map[string]interface{})["title"])
}

func TestGetCourseDetails(t *testing.T) {
	db := setupCourseTest(t)
	app := setupCourseApp(t)

	course := models.Course{Title: "Case Interview Prep", Price: 29900, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	resp, body := getJSON(t, app, fmt.Sprintf("/api/courses/%d", course.ID), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Case Interview Prep", body["data"].(map[string]interface{})["title"])

	resp, _ = getJSON(t, app, "/api/courses/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = getJSON(t, app, "/api/courses/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCourseDetailsInactive(t *testing.T) {
	db := setupCourseTest(t)
	app := setupCourseApp(t)

	course := models.Course{Title: "Paused", Price: 9900, IsActive: true}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Model(&course).Update("is_active", false).Error)

	resp, body := getJSON(t, app, fmt.Sprintf("/api/courses/%d", course.ID), "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Course is not available!", body["message"])
}

func TestGetCoursePrice(t *testing.T) {
	db := setupCourseTest(t)
	app := setupCourseApp(t)

	course := models.Course{Title: "Case Interview Prep", Price: 29900, OriginalPrice: 49900, Discount: 40, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	resp, body := getJSON(t, app, fmt.Sprintf("/api/courses/%d/price", course.ID), "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Cache-Control"), "no-store")

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(29900), data["price"])
	assert.Equal(t, float64(49900), data["originalPrice"])
	assert.Equal(t, "INR", data["currency"])
}

func TestGetCourseMaterialsRequiresEnrollment(t *testing.T) {
	db := setupCourseTest(t)
	app := setupCourseApp(t)

	course := models.Course{Title: "Case Interview Prep", Price: 29900, IsActive: true}
	require.NoError(t, db.Create(&course).Error)
	userID, token := studentToken(t, db)

	path := fmt.Sprintf("/api/courses/%d/materials", course.ID)

	// No session at all
	resp, _ := getJSON(t, app, path, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid session, not enrolled
	resp, body := getJSON(t, app, path, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "You are not enrolled in this course!", body["message"])

	// Enrolled
	require.NoError(t, db.Create(&models.Enrollment{UserID: userID, CourseID: course.ID, Status: models.EnrollmentActive}).Error)
	require.NoError(t, db.Create(&models.Material{CourseID: course.ID, Title: "Framework Cheat Sheet", IsActive: true}).Error)

	resp, body = getJSON(t, app, path, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	materials := body["data"].([]interface{})
	require.Len(t, materials, 1)
	assert.Equal(t, "Framework Cheat Sheet", materials[0].(map[string]interface{})["title"])
}

func TestGetCourseAnnouncementsIncludesBroadcasts(t *testing.T) {
	db := setupCourseTest(t)
	app := setupCourseApp(t)

	course := models.Course{Title: "Case Interview Prep", Price: 29900, IsActive: true}
	other := models.Course{Title: "Other Course", Price: 9900, IsActive: true}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&other).Error)

	userID, token := studentToken(t, db)
	require.NoError(t, db.Create(&models.Enrollment{UserID: userID, CourseID: course.ID, Status: models.EnrollmentActive}).Error)

	require.NoError(t, db.Create(&models.Announcement{CourseID: &course.ID, Title: "Scoped", Message: "m", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Announcement{CourseID: nil, Title: "Broadcast", Message: "m", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Announcement{CourseID: &other.ID, Title: "Elsewhere", Message: "m", IsActive: true}).Error)
	retired := models.Announcement{CourseID: &course.ID, Title: "Retired", Message: "m", IsActive: true}
	require.NoError(t, db.Create(&retired).Error)
	require.NoError(t, db.Model(&retired).Update("is_active", false).Error)

	resp, body := getJSON(t, app, fmt.Sprintf("/api/courses/%d/announcements", course.ID), token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	announcements := body["data"].([]interface{})
	require.Len(t, announcements, 2)

	titles := make([]string, 0, 2)
	for _, a := range announcements {
		titles = append(titles, a.(map[string]interface{})["title"].(string))
	}
	assert.ElementsMatch(t, []string{"Scoped", "Broadcast"}, titles)
}
