package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"printcare/internal/database"
	"printcare/internal/logger"
	"printcare/internal/models"
)

// APITest reports API and database reachability. The failure branch returns
// a generic message only; the store error goes to the log.
func APITest(c *gin.Context) {
	var userCount int64
	err := database.DB.Model(&models.User{}).Count(&userCount).Error
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("api test: database unreachable")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":  false,
			"message":  "API test failed",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "API is working",
		"database":  "connected",
		"userCount": userCount,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
