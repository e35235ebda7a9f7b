// admin.go - Admin authorization filter
// This file implements role-based access control for the admin API.
//
// Authorization Flow (re-evaluated on every call, nothing cached):
// 1. Extract the session token from the request cookie
// 2. Verify the token signature and expiration
// 3. Look up the account by the token's email
// 4. Require the STORED role to be admin
//
// 401/403 responses carry requiresLogout so the client purges its local
// session state and returns to the login page.

package middleware // Declares the package name

import ( // Import required packages
	"go-admin-backend/auth"     // Token verification
	"go-admin-backend/database" // Database connection (for user lookup)
	"go-admin-backend/models"   // User model (for role checking)
	"net/http"                  // HTTP status codes (401, 403)

	"github.com/gin-gonic/gin" // Gin web framework
)

// CurrentUserKey is the gin context key holding the authenticated admin
// account, set by AdminRequired for the handlers behind it.
const CurrentUserKey = "currentUser"

// AdminRequired - Returns a Gin middleware guarding admin endpoints.
// Applied once to the /admin route group instead of being re-implemented
// inline in every handler.
func AdminRequired(tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware handler (runs before admin endpoints)
		// STEP 1: Extract the session token from the cookie
		tokenStr, err := c.Cookie(TokenCookie)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":        "No token provided",
				"requiresLogout": true,
			})
			return
		}

		// STEP 2: Verify signature and expiry
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":        "Invalid or expired token",
				"requiresLogout": true,
			})
			return
		}

		// STEP 3: Resolve the account behind the token
		var user models.User
		if err := database.DB.Where("email = ?", claims.Email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":        "User not found",
				"requiresLogout": true,
			})
			return
		}

		// STEP 4: Require the stored admin role (not the token's role claim)
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":        "Access denied. Admin role required.",
				"requiresLogout": true,
			})
			return
		}

		c.Set(CurrentUserKey, user) // Make the acting admin available to handlers
		c.Next()                    // Continue to next handler (admin access granted)
	}
}
