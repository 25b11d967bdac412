package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
)

// ContextUserIDKey is the gin context key storing the resolved user ID.
const ContextUserIDKey = "currentUserID"

// ContextUserKey is the gin context key storing the loaded user record.
const ContextUserKey = "currentUser"

// IdentityResolver maps an incoming request to a user ID. Resolvers
// never abort; an unresolved request simply stays anonymous.
type IdentityResolver interface {
	Resolve(c *gin.Context) (string, bool)
}

// SessionResolver resolves identity from the session cookie.
type SessionResolver struct {
	auth       *service.AuthService
	cookieName string
}

// NewSessionResolver constructs a cookie-backed resolver.
func NewSessionResolver(auth *service.AuthService, cookieName string) *SessionResolver {
	return &SessionResolver{auth: auth, cookieName: cookieName}
}

// Resolve reads the session cookie and maps it to a user ID.
func (r *SessionResolver) Resolve(c *gin.Context) (string, bool) {
	token, err := c.Cookie(r.cookieName)
	if err != nil || token == "" {
		return "", false
	}
	return r.auth.ResolveSession(c.Request.Context(), token)
}

// BearerResolver resolves identity from a bearer token asserted by an
// external identity provider.
type BearerResolver struct {
	auth *service.AuthService
}

// NewBearerResolver constructs a bearer-token resolver.
func NewBearerResolver(auth *service.AuthService) *BearerResolver {
	return &BearerResolver{auth: auth}
}

// Resolve parses the Authorization header and maps its subject claim to
// a user ID.
func (r *BearerResolver) Resolve(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	claims, err := r.auth.ValidateToken(parts[1])
	if err != nil {
		return "", false
	}
	return claims.Subject, true
}

// Identity attaches the first resolved user ID to the request context.
// The cookie session wins over the bearer fallback by resolver order.
func Identity(resolvers ...IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, resolver := range resolvers {
			if id, ok := resolver.Resolve(c); ok {
				c.Set(ContextUserIDKey, id)
				break
			}
		}
		c.Next()
	}
}
