package middleware

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"recipehub/config"
	"recipehub/database"
	"recipehub/models"
	"recipehub/services/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(user models.User) (string, error) {
	ttl := time.Duration(config.AppConfig.JWTTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// IsAdminEmail reports whether email is the configured administrator address.
func IsAdminEmail(email string) bool {
	admin := config.AppConfig.AdminEmail
	return admin != "" && strings.EqualFold(strings.TrimSpace(email), admin)
}

// JWTMiddleware verifies the bearer token and resolves the caller once:
// the user must still exist, and the admin capability is computed here so
// handlers only ever read Locals("userId") and Locals("isAdmin").
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}
	rawID, ok := claims["userId"].(float64) // JSON numbers decode as float64
	if !ok || rawID <= 0 {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	var user models.User
	if err := database.Database.Db.
		Select("id", "email", "is_admin").
		Where("id = ? AND is_deleted = ?", uint(rawID), false).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		log.Printf("[AUTH] load user %d: %v", uint(rawID), err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error!", nil)
	}

	c.Locals("userId", user.ID)
	c.Locals("isAdmin", user.IsAdmin || IsAdminEmail(user.Email))

	return c.Next()
}

// CurrentActor returns the identity JWTMiddleware resolved for this request.
func CurrentActor(c *fiber.Ctx) enrollment.Actor {
	userID, _ := c.Locals("userId").(uint)
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return enrollment.Actor{UserID: userID, IsAdmin: isAdmin}
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
