// session_gate.go - Page navigation gate
// This file implements the request-level interceptor deciding redirect
// vs pass-through for navigational routes.
//
// Gate Flow (evaluated once per request, before any page logic):
// 1. /login with a valid token -> redirect home (don't show login again)
// 2. /login otherwise -> allow
// 3. Protected page without a token -> redirect to /login
// 4. Protected page with an invalid/expired token -> redirect to /login
// 5. Protected page with a valid token -> allow, with caching disabled
// 6. Any other path -> allow unconditionally
//
// Only the public pages (home, case-study detail) are on the protected
// list. Admin routes are NOT gated here; the AdminRequired filter inside
// each admin endpoint is their sole protection.

package middleware // Declares the package name

import ( // Import required packages
	"go-admin-backend/auth" // Token verification
	"net/http"              // HTTP status codes
	"strings"               // Path prefix matching

	"github.com/gin-gonic/gin" // Gin web framework
)

// TokenCookie is the HttpOnly cookie carrying the session token.
const TokenCookie = "token"

const loginPath = "/login"

// protectedPath reports whether the path is on the gate's allow-list:
// the home page and case-study detail pages.
func protectedPath(path string) bool {
	return path == "/" || strings.HasPrefix(path, "/case-studies")
}

// SessionGate - Returns a Gin middleware that classifies every incoming
// navigational request against the token cookie.
func SessionGate(tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		path := c.Request.URL.Path

		// STEP 1: Read the token cookie (absence is not an error here)
		tokenStr, err := c.Cookie(TokenCookie)
		hasToken := err == nil && tokenStr != ""

		// STEP 2: Login page - already authenticated users go home
		if path == loginPath {
			if hasToken {
				if _, err := tokens.Verify(tokenStr); err == nil { // Token valid
					c.Redirect(http.StatusFound, "/") // Redirect to home
					c.Abort()
					return
				}
			}
			c.Next() // No/invalid token, show login
			return
		}

		// STEP 3: Protected pages require a valid token
		if protectedPath(path) {
			if !hasToken {
				c.Redirect(http.StatusFound, loginPath) // No token, redirect to login
				c.Abort()
				return
			}
			if _, err := tokens.Verify(tokenStr); err != nil {
				c.Redirect(http.StatusFound, loginPath) // Invalid/expired token
				c.Abort()
				return
			}
			c.Header("Cache-Control", "no-store") // Prevent back-nav cache of protected pages
			c.Next()
			return
		}

		c.Next() // Everything else is not gated
	}
}
