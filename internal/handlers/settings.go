package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"printcare/internal/database"
	"printcare/internal/httperr"
	"printcare/internal/models"
)

func ListSettings(c *gin.Context) {
	var settings []models.Setting
	err := database.DB.
		Order("key asc").
		Find(&settings).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type updateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

func UpdateSetting(c *gin.Context) {
	admin, ok := actor(c)
	if !ok {
		return
	}

	var req updateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("key and value are required"))
		return
	}

	key := strings.ToUpper(strings.TrimSpace(req.Key))

	var setting models.Setting
	err := database.DB.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.Internal(err))
			return
		}
		setting = models.Setting{Key: key, Value: req.Value}
		if err := database.DB.Create(&setting).Error; err != nil {
			httperr.Respond(c, httperr.Internal(err))
			return
		}
		database.WriteAudit(database.DB, admin.ID, "CREATE_SETTING", "settings", setting.ID, nil, gin.H{
			"key":   setting.Key,
			"value": setting.Value,
		})
		c.JSON(http.StatusOK, gin.H{"message": "setting created successfully", "setting": setting})
		return
	}

	old := gin.H{"key": setting.Key, "value": setting.Value}
	setting.Value = req.Value
	if err := database.DB.Save(&setting).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, admin.ID, "UPDATE_SETTING", "settings", setting.ID, old, gin.H{
		"key":   setting.Key,
		"value": setting.Value,
	})

	c.JSON(http.StatusOK, gin.H{"message": "setting updated successfully", "setting": setting})
}
