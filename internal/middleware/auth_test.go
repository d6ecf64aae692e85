package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studious-dev/studious-api/internal/database"
	"github.com/studious-dev/studious-api/internal/models"
	"github.com/studious-dev/studious-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(testSecret), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	setupAuthDB(t)

	w := doRequest(authRouter(), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing authorization header")
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	setupAuthDB(t)

	w := doRequest(authRouter(), "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	setupAuthDB(t)

	w := doRequest(authRouter(), "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	db := setupAuthDB(t)

	user := &models.User{Name: "Test", Email: "test@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	token, err := utils.CreateAccessToken(user.ID, user.Name, testSecret, -time.Minute)
	require.NoError(t, err)

	w := doRequest(authRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	db := setupAuthDB(t)

	user := &models.User{Name: "Test", Email: "test@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	token, err := utils.CreateAccessToken(user.ID, user.Name, "other-secret", time.Hour)
	require.NoError(t, err)

	w := doRequest(authRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_DeletedUser(t *testing.T) {
	db := setupAuthDB(t)

	user := &models.User{Name: "Test", Email: "test@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	token, err := utils.CreateAccessToken(user.ID, user.Name, testSecret, time.Hour)
	require.NoError(t, err)

	// The subject no longer resolves once the account is gone
	require.NoError(t, db.Delete(&models.User{}, user.ID).Error)

	w := doRequest(authRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	db := setupAuthDB(t)

	user := &models.User{Name: "Test", Email: "test@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	token, err := utils.CreateAccessToken(user.ID, user.Name, testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(authRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)
}

func TestGetUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	id, ok := GetUserID(c)
	assert.False(t, ok)
	assert.Zero(t, id)

	c.Set(ContextKeyUserID, "not-a-number")
	_, ok = GetUserID(c)
	assert.False(t, ok)

	c.Set(ContextKeyUserID, uint64(42))
	id, ok = GetUserID(c)
	assert.True(t, ok)
	assert.EqualValues(t, 42, id)
}
