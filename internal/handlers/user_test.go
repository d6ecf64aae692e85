package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studious-dev/studious-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestGetProfile(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewUserHandler(env.authService)
	user := env.createTestUser(t, "test@example.com")

	c, w := createAuthContext("GET", "/api/users/profile", nil, user.ID)

	handler.GetProfile(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test@example.com", resp["email"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUpdateProfile_NameOnly(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewUserHandler(env.authService)
	user := env.createTestUser(t, "test@example.com")
	originalHash := user.PasswordHash

	body, err := json.Marshal(map[string]string{"name": "Renamed"})
	require.NoError(t, err)
	c, w := createAuthContext("PUT", "/api/users/profile", body, user.ID)

	handler.UpdateProfile(c)

	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.Equal(t, "Renamed", stored.Name)
	// Email and password stay put
	assert.Equal(t, "test@example.com", stored.Email)
	assert.Equal(t, originalHash, stored.PasswordHash)
}

func TestUpdateProfile_Password(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewUserHandler(env.authService)
	user := env.createTestUser(t, "test@example.com")

	body, err := json.Marshal(map[string]string{"password": "freshsecret"})
	require.NoError(t, err)
	c, w := createAuthContext("PUT", "/api/users/profile", body, user.ID)

	handler.UpdateProfile(c)

	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("freshsecret")))
}
