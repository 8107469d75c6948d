package handlers

import (
	"github.com/gin-gonic/gin"

	"printcare/internal/httperr"
	"printcare/internal/middleware"
	"printcare/internal/models"
)

// render wraps c.HTML and exposes the logged-in account to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
		data["CurrentUsername"] = user.Username
		data["CurrentUserRole"] = user.Role
	}

	c.HTML(status, tmpl, data)
}

// actor returns the account performing the request. Handlers behind the auth
// middleware can rely on it; a missing account means the session was cleared
// mid-flight and the request must not proceed.
func actor(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Respond(c, httperr.ErrUnauthenticated)
		return nil, false
	}
	return user, true
}

func userSummary(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
	}
}
