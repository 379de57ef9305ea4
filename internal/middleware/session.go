package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcourses/microcourses-web/internal/session"
)

const (
	// CookieSession holds the opaque browser session id.
	CookieSession = "mc_session"
	// ContextKeySession is the Gin context key for the decoded Session.
	ContextKeySession = "session"
	// ContextKeySID is the Gin context key for the session id.
	ContextKeySID = "session_id"
)

// RequireSession is the single authorization gate. It loads and decodes the
// persisted token fresh on every request; a missing or dead session clears
// the cookie and redirects to the login page before any rendering or
// fetching happens.
func RequireSession(mgr *session.Manager, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, _ := c.Cookie(CookieSession)

		sess, err := mgr.Load(c.Request.Context(), sid)
		if err != nil || sess == nil {
			// Store failures gate the same way as no session: fail closed.
			c.SetCookie(CookieSession, "", -1, "/", "", secureCookie, true)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(ContextKeySession, sess)
		c.Set(ContextKeySID, sid)
		c.Next()
	}
}

// GetSession retrieves the decoded Session from the Gin context.
func GetSession(c *gin.Context) *session.Session {
	val, exists := c.Get(ContextKeySession)
	if !exists {
		return nil
	}
	sess, ok := val.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// GetSID retrieves the session id from the Gin context.
func GetSID(c *gin.Context) string {
	return c.GetString(ContextKeySID)
}
