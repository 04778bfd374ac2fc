package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"recipehub/config"
	"recipehub/database"
	"recipehub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *fiber.App {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret", JWTTTLHours: 1, AdminEmail: "chef@example.com"}
	database.Database.Db = database.OpenTestDB(t)

	app := fiber.New()
	app.Get("/me", JWTMiddleware, func(c *fiber.Ctx) error {
		actor := CurrentActor(c)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"userId": actor.UserID, "isAdmin": actor.IsAdmin})
	})
	app.Get("/admin", JWTMiddleware, AdminOnly, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	return app
}

func createUser(t *testing.T, email string, isAdmin bool) models.User {
	t.Helper()
	u := models.User{Name: "Test", Email: email, Password: "x", IsAdmin: isAdmin}
	require.NoError(t, database.Database.Db.Create(&u).Error)
	return u
}

func call(t *testing.T, app *fiber.App, path, token string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestJWTMiddleware_ResolvesUser(t *testing.T) {
	app := setup(t)
	u := createUser(t, "cook@example.com", false)
	token, err := GenerateJWT(u)
	require.NoError(t, err)

	status, body := call(t, app, "/me", token)
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, u.ID, data["userId"])
	assert.Equal(t, false, data["isAdmin"])

	status, _ = call(t, app, "/admin", token)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestJWTMiddleware_AdminFromEmailOrFlag(t *testing.T) {
	app := setup(t)

	byEmail := createUser(t, "Chef@Example.com", false)
	byFlag := createUser(t, "owner@example.com", true)

	for _, u := range []models.User{byEmail, byFlag} {
		token, err := GenerateJWT(u)
		require.NoError(t, err)
		status, _ := call(t, app, "/admin", token)
		assert.Equal(t, fiber.StatusOK, status, u.Email)
	}
}

func TestJWTMiddleware_Rejects(t *testing.T) {
	app := setup(t)
	u := createUser(t, "cook@example.com", false)

	status, _ := call(t, app, "/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = call(t, app, "/me", "not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": u.ID,
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	status, _ = call(t, app, "/me", signed)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	otherKey := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": u.ID})
	signed, err = otherKey.SignedString([]byte("wrong"))
	require.NoError(t, err)
	status, _ = call(t, app, "/me", signed)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	ghost := models.User{Email: "ghost@example.com"}
	ghost.ID = 9999
	token, err := GenerateJWT(ghost)
	require.NoError(t, err)
	status, body := call(t, app, "/me", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "User not found!", body["message"])
}
