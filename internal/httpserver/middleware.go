package httpserver

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shopspark/internal/auth"
	"shopspark/internal/domain"
	"shopspark/internal/session"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "session_id"
	sessionCtxKey = "storefront-session"
)

// sessionMiddleware resolves the caller's session from the X-Session-ID
// header or the session cookie, minting a fresh one otherwise, and echoes
// the ID back so the collaborator can hold on to it. A valid bearer token
// re-attaches the signed-in identity to a recreated session.
func sessionMiddleware(mgr *session.Manager, tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				id = cookie
			}
		}
		sess := mgr.GetOrCreate(id)

		if tokens != nil {
			if authz := c.GetHeader("Authorization"); strings.HasPrefix(authz, "Bearer ") {
				if claims, err := tokens.Validate(strings.TrimPrefix(authz, "Bearer ")); err == nil {
					sess.RestoreUser(domain.User{Name: claims.Name, Email: claims.Email})
				}
			}
		}

		c.Header(sessionHeader, sess.ID)
		c.Set(sessionCtxKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionCtxKey).(*session.Session)
}
