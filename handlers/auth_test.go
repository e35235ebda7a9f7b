// auth_test.go - Tests for login, logout, and credential updates
// Run with: go test ./...

package handlers

import (
	"bytes"
	"encoding/json"
	"go-admin-backend/auth"
	"go-admin-backend/config"
	"go-admin-backend/database"
	"go-admin-backend/middleware"
	"go-admin-backend/models"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// testConfig returns a development-mode config for tests
func testConfig() *config.Config {
	return &config.Config{
		DBPath:    "test.db",
		JWTSecret: "test-secret",
		Env:       "development",
	}
}

// setupTestDB removes any existing test DB and creates a new one for each test run
func setupTestDB(t *testing.T, path string) {
	t.Helper()
	_ = os.Remove(path) // Remove old test DB if exists
	assert.NoError(t, database.Connect(path))
	t.Cleanup(func() { _ = os.Remove(path) })
}

// seedUser inserts an account with a hashed password and returns it
func seedUser(t *testing.T, email, password, role string, sessionTime int, active bool) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	user := models.User{
		Username:    email,
		Name:        "Test " + role,
		Email:       email,
		Password:    hash,
		Role:        role,
		SessionTime: sessionTime,
		IsActive:    active,
	}
	assert.NoError(t, database.DB.Create(&user).Error)
	return user
}

// setupAuthRouter returns a Gin engine with the auth routes for testing
func setupAuthRouter(cfg *config.Config, tokens *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", Login(cfg, tokens))
	r.POST("/auth/logout", Logout(cfg))
	r.POST("/auth/update-credentials", UpdateCredentials(cfg))
	return r
}

// postJSON sends a JSON POST and records the response
func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// findCookie returns the named Set-Cookie from the response, or nil
func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginSuccess(t *testing.T) {
	setupTestDB(t, "test.db")
	cfg := testConfig()
	tokens := auth.NewService(cfg.JWTSecret)
	router := setupAuthRouter(cfg, tokens)
	seedUser(t, "user@test.com", "userpass", models.RoleUser, 30, true)

	w := postJSON(router, "/auth/login", LoginInput{Email: "user@test.com", Password: "userpass"})
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Success bool        `json:"success"`
		Token   string      `json:"token"`
		User    models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user@test.com", resp.User.Email)
	assert.NotContains(t, w.Body.String(), "password") // Hash is never serialized

	// Decoded role must match the stored role
	claims, err := tokens.Verify(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, claims.Role)

	// Token cookie is HttpOnly, role cookie is readable by client script
	tokenCookie := findCookie(w, middleware.TokenCookie)
	assert.NotNil(t, tokenCookie)
	assert.True(t, tokenCookie.HttpOnly)
	assert.Equal(t, resp.Token, tokenCookie.Value)

	roleCookie := findCookie(w, RoleCookie)
	assert.NotNil(t, roleCookie)
	assert.False(t, roleCookie.HttpOnly)
	assert.Equal(t, models.RoleUser, roleCookie.Value)
}

func TestLoginTokenLifetimePolicy(t *testing.T) {
	setupTestDB(t, "test.db")
	cfg := testConfig()
	tokens := auth.NewService(cfg.JWTSecret)
	router := setupAuthRouter(cfg, tokens)
	seedUser(t, "admin@test.com", "adminpass", models.RoleAdmin, 30, true)
	seedUser(t, "user30@test.com", "userpass", models.RoleUser, 30, true)

	// Admin tokens last 24h regardless of sessionTime
	w := postJSON(router, "/auth/login", LoginInput{Email: "admin@test.com", Password: "adminpass"})
	assert.Equal(t, 200, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	claims, err := tokens.Verify(resp.Token)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	// User with sessionTime=30 gets a 1800s token
	w = postJSON(router, "/auth/login", LoginInput{Email: "user30@test.com", Password: "userpass"})
	assert.Equal(t, 200, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	claims, err = tokens.Verify(resp.Token)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(1800*time.Second), claims.ExpiresAt.Time, 5*time.Second)
}

func TestLoginFailures(t *testing.T) {
	setupTestDB(t, "test.db")
	cfg := testConfig()
	tokens := auth.NewService(cfg.JWTSecret)
	router := setupAuthRouter(cfg, tokens)
	seedUser(t, "user@test.com", "userpass", models.RoleUser, 30, true)
	seedUser(t, "gone@test.com", "gonepass", models.RoleUser, 30, false) // Soft-deleted

	// Missing fields
	w := postJSON(router, "/auth/login", map[string]string{"email": "user@test.com"})
	assert.Equal(t, 400, w.Code)

	// Unknown account
	w = postJSON(router, "/auth/login", LoginInput{Email: "nobody@test.com", Password: "x"})
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	// Wrong password
	w = postJSON(router, "/auth/login", LoginInput{Email: "user@test.com", Password: "wrongpass"})
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	// Inactive account rejected even with the correct password
	w = postJSON(router, "/auth/login", LoginInput{Email: "gone@test.com", Password: "gonepass"})
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "inactive")
}

func TestLogoutClearsCookies(t *testing.T) {
	cfg := testConfig()
	tokens := auth.NewService(cfg.JWTSecret)
	router := setupAuthRouter(cfg, tokens)

	w := postJSON(router, "/auth/logout", nil)
	assert.Equal(t, 200, w.Code)

	tokenCookie := findCookie(w, middleware.TokenCookie)
	assert.NotNil(t, tokenCookie)
	assert.Empty(t, tokenCookie.Value)
	assert.Negative(t, tokenCookie.MaxAge) // Expired immediately

	roleCookie := findCookie(w, RoleCookie)
	assert.NotNil(t, roleCookie)
	assert.Empty(t, roleCookie.Value)
	assert.Negative(t, roleCookie.MaxAge)
}

func TestUpdateCredentials(t *testing.T) {
	setupTestDB(t, "test.db")
	cfg := testConfig()
	tokens := auth.NewService(cfg.JWTSecret)
	router := setupAuthRouter(cfg, tokens)
	seedUser(t, "old@test.com", "oldpass", models.RoleUser, 30, true)

	// Missing fields
	w := postJSON(router, "/auth/update-credentials", map[string]string{"currentEmail": "old@test.com"})
	assert.Equal(t, 400, w.Code)

	// Unknown account
	w = postJSON(router, "/auth/update-credentials", UpdateCredentialsInput{
		CurrentEmail: "nobody@test.com", NewEmail: "new@test.com", NewPassword: "newpass",
	})
	assert.Equal(t, 400, w.Code)

	// Success: email and password both replaced
	w = postJSON(router, "/auth/update-credentials", UpdateCredentialsInput{
		CurrentEmail: "old@test.com", NewEmail: "new@test.com", NewPassword: "newpass",
	})
	assert.Equal(t, 200, w.Code)

	var updated models.User
	assert.NoError(t, database.DB.Where("email = ?", "new@test.com").First(&updated).Error)
	assert.True(t, auth.CheckPassword(updated.Password, "newpass"))
	assert.False(t, auth.CheckPassword(updated.Password, "oldpass")) // Old password no longer verifies
}
