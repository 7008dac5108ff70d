package middleware

import (
	"fmt"
	"strings"
	"time"

	"placementpulse/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	AuthCookie  = "auth_token"
	AdminCookie = "admin_token"
)

// GenerateJWT generates a session token for a student
func GenerateJWT(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(7 * 24 * time.Hour).Unix(), // expiry 7d
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// GenerateAdminJWT generates a session token for the admin panel
func GenerateAdminJWT(email string) (string, error) {
	claims := jwt.MapClaims{
		"role":  "admin",
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// tokenFromRequest reads a session token from the named HTTP-only cookie,
// falling back to a Bearer Authorization header for API clients.
func tokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if cookie := c.Cookies(cookieName); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}
	return ""
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token payload")
	}
	return claims, nil
}

// JWTMiddleware checks for a valid student session token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString := tokenFromRequest(c, AuthCookie)
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing session token", nil)
	}

	claims, err := parseToken(tokenString)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	rawID, ok := claims["userId"].(float64) // JWT numeric claims decode as float64
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	c.Locals("userId", uint(rawID))
	if email, ok := claims["email"].(string); ok {
		c.Locals("userEmail", email)
	}

	return c.Next()
}

// AdminMiddleware checks for a valid admin session token in the request.
// Admin identity is separate from student identity; a student token never
// passes this check.
func AdminMiddleware(c *fiber.Ctx) error {
	tokenString := tokenFromRequest(c, AdminCookie)
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	claims, err := parseToken(tokenString)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	if role, ok := claims["role"].(string); !ok || role != "admin" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Admin access required", nil)
	}

	if email, ok := claims["email"].(string); ok {
		c.Locals("adminEmail", email)
	}

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
