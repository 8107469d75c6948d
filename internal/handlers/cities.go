package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"printcare/internal/database"
	"printcare/internal/httperr"
	"printcare/internal/models"
)

func ListCities(c *gin.Context) {
	var cities []models.City
	err := database.DB.
		Order("state asc, name asc").
		Find(&cities).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

type createCityRequest struct {
	Name    string `json:"name" binding:"required"`
	State   string `json:"state" binding:"required"`
	Country string `json:"country"`
}

func CreateCity(c *gin.Context) {
	admin, ok := actor(c)
	if !ok {
		return
	}

	var req createCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("city name and state are required"))
		return
	}

	name := strings.TrimSpace(req.Name)
	state := strings.TrimSpace(req.State)
	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = "India"
	}

	var count int64
	err := database.DB.Model(&models.City{}).
		Where("LOWER(name) = LOWER(?) AND LOWER(state) = LOWER(?)", name, state).
		Count(&count).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	if count > 0 {
		httperr.Respond(c, httperr.Conflict("city already exists in this state"))
		return
	}

	city := models.City{Name: name, State: state, Country: country, IsActive: true}
	if err := database.DB.Create(&city).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, admin.ID, "CREATE_CITY", "cities", city.ID, nil, gin.H{
		"name":    city.Name,
		"state":   city.State,
		"country": city.Country,
	})

	c.JSON(http.StatusOK, gin.H{"message": "city added successfully", "city": city})
}

type updateCityRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Name     string `json:"name"`
	State    string `json:"state"`
	IsActive *bool  `json:"is_active"`
}

func UpdateCity(c *gin.Context) {
	admin, ok := actor(c)
	if !ok {
		return
	}

	var req updateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("city id is required"))
		return
	}

	var city models.City
	if err := database.DB.First(&city, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "city not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	old := gin.H{"name": city.Name, "state": city.State, "is_active": city.IsActive}

	if req.Name != "" {
		city.Name = strings.TrimSpace(req.Name)
	}
	if req.State != "" {
		city.State = strings.TrimSpace(req.State)
	}
	if req.IsActive != nil {
		city.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&city).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, admin.ID, "UPDATE_CITY", "cities", city.ID, old, gin.H{
		"name":      city.Name,
		"state":     city.State,
		"is_active": city.IsActive,
	})

	c.JSON(http.StatusOK, gin.H{"message": "city updated successfully", "city": city})
}

func DeleteCity(c *gin.Context) {
	admin, ok := actor(c)
	if !ok {
		return
	}

	id64, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid city id"))
		return
	}

	var city models.City
	if err := database.DB.First(&city, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "city not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	var clients int64
	err = database.DB.Model(&models.Client{}).
		Where("city_id = ?", city.ID).
		Count(&clients).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	if clients > 0 {
		httperr.Respond(c, httperr.Conflict("city has clients and cannot be deleted"))
		return
	}

	if err := database.DB.Unscoped().Delete(&city).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, admin.ID, "DELETE_CITY", "cities", city.ID, gin.H{
		"name":  city.Name,
		"state": city.State,
	}, nil)

	c.JSON(http.StatusOK, gin.H{"message": "city deleted successfully"})
}
