// auth.go - Handles login, logout, and credential updates

package handlers // Declares the package name

import ( // Import required packages
	"go-admin-backend/auth"     // Token issuance and password hashing
	"go-admin-backend/config"   // Project config
	"go-admin-backend/database" // Database connection
	"go-admin-backend/middleware"
	"go-admin-backend/models" // User model
	"net/http"                // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// RoleCookie mirrors the role next to the token so client script can do
// quick role checks without decoding the token. Deliberately not HttpOnly.
const RoleCookie = "role"

// cookieMaxAge is the browser lifetime of both cookies. Token expiry is
// enforced by the token itself, not by the cookie.
const cookieMaxAge = 60 * 60 * 24 // 1 day in seconds

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

type UpdateCredentialsInput struct { // Struct for credential update input
	CurrentEmail string `json:"currentEmail" binding:"required"` // Email identifying the account
	NewEmail     string `json:"newEmail" binding:"required"`     // Replacement email
	NewPassword  string `json:"newPassword" binding:"required"`  // Replacement password
}

// Login - Handler for user login
// Verifies credentials, rejects inactive accounts, and issues a session
// token whose lifetime depends on the account's role and session-time policy.
func Login(cfg *config.Config, tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Parse and validate input
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		// STEP 2: Look up the account and compare the password hash
		var user models.User
		if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"}) // No such account
			return
		}
		if !auth.CheckPassword(user.Password, input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"}) // Wrong password
			return
		}

		// STEP 3: Soft-deleted accounts cannot log in, even with the right password
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is inactive"})
			return
		}

		// STEP 4: Issue the session token (24h for admins, sessionTime minutes otherwise)
		ttl := tokens.TTLFor(user.Role, user.SessionTime)
		token, err := tokens.Issue(user.Email, user.Role, ttl)
		if err != nil {
			internalError(c, cfg, err)
			return
		}

		// STEP 5: Set the token cookie (HttpOnly) and the readable role cookie
		setSessionCookies(c, cfg, token, user.Role)

		c.JSON(http.StatusOK, gin.H{ // Success response with redacted user (hash is never serialized)
			"success": true,
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	}
}

// Logout - Handler for logout; clears both session cookies.
// The token itself stays valid until expiry since the server holds no
// session state, so clients must also discard their local copy.
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		clearSessionCookies(c, cfg)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// UpdateCredentials - Handler for replacing an account's email and password.
func UpdateCredentials(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateCredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil { // All three fields required
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		var user models.User
		if err := database.DB.Where("email = ?", input.CurrentEmail).First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update credentials"})
			return
		}

		hash, err := auth.HashPassword(input.NewPassword) // New password always replaces the hash here
		if err != nil {
			internalError(c, cfg, err)
			return
		}
		user.Email = input.NewEmail
		user.Password = hash
		if err := database.DB.Save(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update credentials"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Credentials updated successfully"})
	}
}

// setSessionCookies sets the HttpOnly token cookie plus the readable role cookie.
func setSessionCookies(c *gin.Context, cfg *config.Config, token, role string) {
	secure := cfg.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, cookieMaxAge, "/", "", secure, true) // HttpOnly
	c.SetCookie(RoleCookie, role, cookieMaxAge, "/", "", secure, false)             // Readable by client script
}

// clearSessionCookies expires both cookies immediately (Max-Age=0).
func clearSessionCookies(c *gin.Context, cfg *config.Config) {
	secure := cfg.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(RoleCookie, "", -1, "/", "", secure, false)
}

// internalError maps unexpected failures to a 500, exposing detail only
// outside production mode.
func internalError(c *gin.Context, cfg *config.Config, err error) {
	body := gin.H{"message": "Internal server error"}
	if !cfg.IsProduction() {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
