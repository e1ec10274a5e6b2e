package middleware

import (
	"net/http"
	"strings"

	"fenceworks/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	SignInPath        = "/v1/auth/signin"
	CustomerHomePath  = "/v1/customer/dashboard"
	AdminHomePath     = "/v1/admin/dashboard"
	contextSessionKey = "fenceworks.session"
)

// SessionParser turns a bearer or cookie token into a Session.
type SessionParser interface {
	ParseSession(token string) (entities.Session, error)
}

// Authenticate resolves the caller from "Authorization: Bearer <token>" or,
// failing that, from the cookie session. An invalid token leaves the request
// anonymous; the Require* middlewares decide what that means.
func Authenticate(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token = cookieToken(c)
		}
		if token != "" {
			if s, err := parser.ParseSession(token); err == nil {
				c.Set(contextSessionKey, s)
			}
		}
		c.Next()
	}
}

// RequireAuth sends anonymous callers to the sign-in page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFrom(c); !ok {
			c.Redirect(http.StatusFound, SignInPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole sends anonymous callers to sign-in and callers with another
// role to their own dashboard.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFrom(c)
		if !ok {
			c.Redirect(http.StatusFound, SignInPath)
			c.Abort()
			return
		}
		if s.Role != role {
			c.Redirect(http.StatusFound, HomePath(s.Role))
			c.Abort()
			return
		}
		c.Next()
	}
}

// HomePath is the landing dashboard of a role.
func HomePath(role entities.Role) string {
	if role == entities.RoleAdmin {
		return AdminHomePath
	}
	return CustomerHomePath
}

func SessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(contextSessionKey)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	if !ok || s.IsZero() {
		return entities.Session{}, false
	}
	return s, true
}

// SetSession is used by handlers and tests that authenticate in-process.
func SetSession(c *gin.Context, s entities.Session) {
	c.Set(contextSessionKey, s)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
