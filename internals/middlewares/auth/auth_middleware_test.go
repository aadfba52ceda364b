package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"elevencentral_backend/internals/configs"
	authModel "elevencentral_backend/internals/features/users/auth/model"
)

const testSecret = "auth-middleware-test-secret"

func newGuardedApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authModel.TokenBlacklist{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	prev := configs.JWTSecret
	configs.JWTSecret = testSecret
	t.Cleanup(func() { configs.JWTSecret = prev })

	app := fiber.New()
	app.Get("/private", AuthMiddleware(db), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app, db
}

func accessClaims(userID uuid.UUID) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":     userID.String(),
		"user_id": userID.String(),
		"role":    "staff",
		"typ":     "access",
		"iat":     now.Unix(),
		"exp":     now.Add(15 * time.Minute).Unix(),
	}
}

func requestWithToken(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	app, _ := newGuardedApp(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims(uuid.New())).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, requestWithToken(t, app, token))
}

func TestAuthMiddlewareRejectsNonHMACToken(t *testing.T) {
	app, _ := newGuardedApp(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, accessClaims(uuid.New())).
		SignedString(key)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, token))
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	app, _ := newGuardedApp(t)

	claims := accessClaims(uuid.New())
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, token))
}

func TestAuthMiddlewareRejectsBlacklistedToken(t *testing.T) {
	app, db := newGuardedApp(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims(uuid.New())).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	require.NoError(t, db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().Add(15 * time.Minute),
	}).Error)

	assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, token))
}
