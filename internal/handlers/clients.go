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

func ListClients(c *gin.Context) {
	var clients []models.Client
	err := database.DB.
		Preload("City").
		Order("name asc").
		Find(&clients).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func GetClient(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid client id"))
		return
	}

	var client models.Client
	err = database.DB.
		Preload("City").
		First(&client, uint(id64)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "client not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

type clientRequest struct {
	Name        string `json:"name" binding:"required,min=3"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	GSTIN       string `json:"gstin"`
	CityID      *uint  `json:"city_id"`
}

// checkClientUniqueness rejects duplicate name, email or GSTIN. excludeID
// skips the row being updated.
func checkClientUniqueness(name, email, gstin string, excludeID uint) error {
	type check struct {
		query string
		value string
		msg   string
	}
	checks := []check{
		{"LOWER(name) = LOWER(?)", name, "client with this name already exists"},
		{"LOWER(email) = LOWER(?)", email, "client with this email already exists"},
		{"gstin = ?", gstin, "client with this GSTIN already exists"},
	}

	for _, ch := range checks {
		if ch.value == "" {
			continue
		}
		var count int64
		q := database.DB.Model(&models.Client{}).Where(ch.query, ch.value)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return httperr.Internal(err)
		}
		if count > 0 {
			return httperr.Conflict(ch.msg)
		}
	}
	return nil
}

func CreateClient(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("client name of at least 3 characters is required"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if err := checkClientUniqueness(name, req.Email, req.GSTIN, 0); err != nil {
		httperr.Respond(c, err)
		return
	}

	client := models.Client{
		Name:        name,
		ContactName: strings.TrimSpace(req.ContactName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		GSTIN:       strings.ToUpper(strings.TrimSpace(req.GSTIN)),
		CityID:      req.CityID,
		IsActive:    true,
	}
	if err := database.DB.Create(&client).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, user.ID, "CREATE_CLIENT", "clients", client.ID, nil, gin.H{
		"name":  client.Name,
		"email": client.Email,
		"gstin": client.GSTIN,
	})

	c.JSON(http.StatusOK, gin.H{"message": "client created successfully", "client": client})
}

func UpdateClient(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid client id"))
		return
	}

	var client models.Client
	if err := database.DB.First(&client, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "client not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("client name of at least 3 characters is required"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if err := checkClientUniqueness(name, req.Email, req.GSTIN, client.ID); err != nil {
		httperr.Respond(c, err)
		return
	}

	old := gin.H{
		"name":    client.Name,
		"email":   client.Email,
		"phone":   client.Phone,
		"gstin":   client.GSTIN,
		"city_id": client.CityID,
	}

	client.Name = name
	client.ContactName = strings.TrimSpace(req.ContactName)
	client.Email = strings.ToLower(strings.TrimSpace(req.Email))
	client.Phone = strings.TrimSpace(req.Phone)
	client.Address = strings.TrimSpace(req.Address)
	client.GSTIN = strings.ToUpper(strings.TrimSpace(req.GSTIN))
	client.CityID = req.CityID

	if err := database.DB.Save(&client).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, user.ID, "UPDATE_CLIENT", "clients", client.ID, old, gin.H{
		"name":    client.Name,
		"email":   client.Email,
		"phone":   client.Phone,
		"gstin":   client.GSTIN,
		"city_id": client.CityID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "client updated successfully", "client": client})
}

func DeleteClient(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	id64, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid client id"))
		return
	}

	var client models.Client
	if err := database.DB.First(&client, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "client not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	var tickets, invoices int64
	if err := database.DB.Model(&models.ServiceTicket{}).Where("client_id = ?", client.ID).Count(&tickets).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	if err := database.DB.Model(&models.Invoice{}).Where("client_id = ?", client.ID).Count(&invoices).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	if tickets > 0 || invoices > 0 {
		httperr.Respond(c, httperr.Conflict("client has tickets or invoices and cannot be deleted"))
		return
	}

	if err := database.DB.Unscoped().Delete(&client).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, user.ID, "DELETE_CLIENT", "clients", client.ID, gin.H{
		"name":  client.Name,
		"email": client.Email,
	}, nil)

	c.JSON(http.StatusOK, gin.H{"message": "client deleted successfully"})
}
