package authController

import (
	"crypto/subtle"
	"log"
	"time"

	"placementpulse/config"
	"placementpulse/database"
	"placementpulse/middleware"
	"placementpulse/models"
	authValidator "placementpulse/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func setSessionCookie(c *fiber.Ctx, name, token string, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   config.AppConfig.CashfreeEnvironment == "production",
	})
}

func clearSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Mobile:       reqData.Mobile,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser.Projection())
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	err := database.Database.Db.
		Preload("EnrolledCourses").
		Where("email = ? AND is_deleted = ?", reqData.Email, false).
		First(&user).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	setSessionCookie(c, middleware.AuthCookie, token, 7*24*time.Hour)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user.Projection(),
		"token": token,
	})
}

func Logout(c *fiber.Ctx) error {
	clearSessionCookie(c, middleware.AuthCookie)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

// Me returns the current session's user projection.
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	err := database.Database.Db.
		Preload("EnrolledCourses").
		Where("id = ? AND is_deleted = ?", userID, false).
		First(&user).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user.Projection())
}

// AdminLogin verifies the configured admin credentials. Admin identity is a
// credential check against configuration, not a User row.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(reqData.Email), []byte(config.AppConfig.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(reqData.Password), []byte(config.AppConfig.AdminPassword)) == 1

	if !emailOK || !passwordOK {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateAdminJWT(reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	setSessionCookie(c, middleware.AdminCookie, token, 24*time.Hour)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin login successful.", fiber.Map{
		"email": reqData.Email,
		"token": token,
	})
}

func AdminLogout(c *fiber.Ctx) error {
	clearSessionCookie(c, middleware.AdminCookie)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}
