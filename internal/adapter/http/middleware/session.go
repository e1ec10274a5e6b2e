package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "fenceworks_session"
	sessionTokenKey   = "token"
)

// Sessions installs the signed cookie store that carries the session token
// for browser clients.
func Sessions(secret string, ttl time.Duration, secure bool) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(SessionCookieName, store)
}

// SaveSessionToken stores token in the cookie session. It is a no-op when
// the sessions middleware is not installed.
func SaveSessionToken(c *gin.Context, token string) error {
	if !hasSessions(c) {
		return nil
	}
	sess := sessions.Default(c)
	sess.Set(sessionTokenKey, token)
	return sess.Save()
}

func ClearSession(c *gin.Context) error {
	if !hasSessions(c) {
		return nil
	}
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	return sess.Save()
}

func cookieToken(c *gin.Context) string {
	if !hasSessions(c) {
		return ""
	}
	token, _ := sessions.Default(c).Get(sessionTokenKey).(string)
	return token
}

func hasSessions(c *gin.Context) bool {
	_, ok := c.Get(sessions.DefaultKey)
	return ok
}
