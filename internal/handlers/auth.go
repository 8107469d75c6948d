package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"printcare/internal/auth"
	"printcare/internal/database"
	"printcare/internal/httperr"
	"printcare/internal/metrics"
	"printcare/internal/middleware"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and establishes the session. All verification
// failures surface as the same 401 — the response never reveals whether the
// username exists.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		httperr.Respond(c, httperr.ErrInvalidCredentials)
		return
	}

	identity, err := auth.Authenticate(database.DB, req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		httperr.Respond(c, err)
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserID, identity.ID)
	sess.Set(middleware.SessionUsername, identity.Username)
	sess.Set(middleware.SessionRole, string(identity.Role))
	if err := sess.Save(); err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       identity.ID,
			"username": identity.Username,
			"role":     identity.Role,
		},
	})
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the logged-in account, without credential material.
func Me(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"role":       user.Role,
			"is_active":  user.IsActive,
			"last_login": user.LastLogin,
		},
	})
}
