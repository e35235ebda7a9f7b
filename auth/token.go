// token.go - Issues and verifies signed session tokens
//
// Token Lifecycle:
// 1. Login computes a TTL from the account's role and session-time policy
// 2. Issue signs a token carrying {email, role} plus the expiry
// 3. The client holds the token and mirrors it into the "token" cookie
// 4. Verify recomputes the signature and checks expiry on every request
//
// The server keeps no session state: validity is entirely determined by
// the signature and expiry at verification time.

package auth // Declares the package name

import ( // Import required packages
	"errors" // Sentinel error for the invalid-token case
	"time"   // For token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken covers every negative verification outcome: bad
// signature, malformed token, or expired token. Callers treat it as a
// normal result, not a fatal condition.
var ErrInvalidToken = errors.New("invalid or expired token")

// Token lifetime policy: admins always get 24 hours; other roles get
// their stored session time in minutes, falling back to one hour.
const (
	AdminTokenTTL   = 24 * time.Hour
	DefaultTokenTTL = time.Hour
)

// Claims carried in every session token: identity plus the registered
// expiry. Role is captured at issuance and not re-read per request.
type Claims struct {
	Email string `json:"email"` // Account email (primary lookup key)
	Role  string `json:"role"`  // Role at login time
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a single shared secret.
// The secret is injected once at construction; there is exactly one
// verification key active at any time.
type Service struct {
	secret []byte // HMAC signing key
}

func NewService(secret string) *Service { // NewService builds a token service around the signing secret
	return &Service{secret: []byte(secret)}
}

// Issue produces a signed token encoding the identity and an expiry
// ttl in the future. Pure function of its inputs plus the current time.
func (s *Service) Issue(email, role string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ // Create JWT token (HS256)
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Set expiration
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString(s.secret) // Sign token with the shared secret
}

// Verify checks the signature and expiry and returns the embedded
// identity. Any failure maps to ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil // Provide secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid { // Malformed, bad signature, or expired
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTLFor applies the session lifetime policy: 24 hours for admins,
// otherwise the account's sessionTime in minutes (1 hour when unset).
func (s *Service) TTLFor(role string, sessionTimeMinutes int) time.Duration {
	if role == "admin" {
		return AdminTokenTTL
	}
	if sessionTimeMinutes > 0 {
		return time.Duration(sessionTimeMinutes) * time.Minute
	}
	return DefaultTokenTTL
}
