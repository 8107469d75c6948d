package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"printcare/internal/auth"
	"printcare/internal/metrics"
	"printcare/internal/models"
)

// Session keys set at login.
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionRole     = "role"
)

func sessionRole(c *gin.Context) (models.Role, bool) {
	sess := sessions.Default(c)
	if sess.Get(SessionUserID) == nil {
		return "", false
	}
	roleStr, _ := sess.Get(SessionRole).(string)
	return models.Role(roleStr), true
}

// PageGate protects the /dashboard pages. A request with no session is
// redirected to /login; a logged-in request whose role fails the permission
// check for the path is rewritten to the unauthorized view in place — the
// response is the 403 page, not a redirect, so the URL bar is unchanged.
func PageGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := sessionRole(c)
		if !ok {
			metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if !auth.HasPermission(role, c.Request.URL.Path) {
			metrics.AccessDeniedTotal.WithLabelValues("forbidden").Inc()
			c.HTML(http.StatusForbidden, "unauthorized.html", gin.H{
				"path": c.Request.URL.Path,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAPIAuth protects JSON endpoints: no session means 401.
func RequireAPIAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sessionRole(c); !ok {
			metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAPIRole allows only the listed roles through; a valid session with
// any other role gets 403.
func RequireAPIRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := sessionRole(c)
		if !ok {
			metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if _, ok := allowed[role]; !ok {
			metrics.AccessDeniedTotal.WithLabelValues("forbidden").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
