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

// Printer and cartridge model catalogs.

func ListPrinterModels(c *gin.Context) {
	var printers []models.PrinterModel
	err := database.DB.
		Order("brand asc, model_name asc").
		Find(&printers).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"printers": printers})
}

type printerModelRequest struct {
	ModelName string `json:"model_name" binding:"required"`
	Brand     string `json:"brand" binding:"required"`
	Type      string `json:"type" binding:"required"`
}

func CreatePrinterModel(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req printerModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("model name, brand and type are required"))
		return
	}

	ptype := models.PrinterType(strings.ToUpper(req.Type))
	if !ptype.Valid() {
		httperr.Respond(c, httperr.BadRequest("type must be LASER, INKJET or DOT_MATRIX"))
		return
	}

	name := strings.TrimSpace(req.ModelName)
	var count int64
	err := database.DB.Model(&models.PrinterModel{}).
		Where("LOWER(model_name) = LOWER(?)", name).
		Count(&count).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	if count > 0 {
		httperr.Respond(c, httperr.Conflict("printer model already exists"))
		return
	}

	printer := models.PrinterModel{
		ModelName: name,
		Brand:     strings.TrimSpace(req.Brand),
		Type:      ptype,
	}
	if err := database.DB.Create(&printer).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, user.ID, "CREATE_PRINTER_MODEL", "printer_models", printer.ID, nil, gin.H{
		"model_name": printer.ModelName,
		"brand":      printer.Brand,
		"type":       printer.Type,
	})

	c.JSON(http.StatusOK, gin.H{"message": "printer model created successfully", "printer": printer})
}

func ListCartridgeModels(c *gin.Context) {
	var cartridges []models.CartridgeModel
	err := database.DB.
		Order("model_name asc").
		Find(&cartridges).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"cartridges": cartridges})
}

type cartridgeModelRequest struct {
	ModelName      string `json:"model_name" binding:"required"`
	PrinterModelID uint   `json:"printer_model_id" binding:"required"`
	Type           string `json:"type" binding:"required"`
	Color          string `json:"color" binding:"required"`
	PageYield      int    `json:"page_yield" binding:"omitempty,gt=0"`
}

func CreateCartridgeModel(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req cartridgeModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("model name, printer model, type and color are required"))
		return
	}

	ctype := models.CartridgeType(strings.ToUpper(req.Type))
	if !ctype.Valid() {
		httperr.Respond(c, httperr.BadRequest("type must be ORIGINAL, COMPATIBLE or REFILLED"))
		return
	}

	var printer models.PrinterModel
	if err := database.DB.First(&printer, req.PrinterModelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "printer model not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	name := strings.TrimSpace(req.ModelName)
	var count int64
	err := database.DB.Model(&models.CartridgeModel{}).
		Where("LOWER(model_name) = LOWER(?)", name).
		Count(&count).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	if count > 0 {
		httperr.Respond(c, httperr.Conflict("cartridge model already exists"))
		return
	}

	cartridge := models.CartridgeModel{
		ModelName:      name,
		PrinterModelID: printer.ID,
		Type:           ctype,
		Color:          strings.ToUpper(strings.TrimSpace(req.Color)),
		PageYield:      req.PageYield,
	}
	if err := database.DB.Create(&cartridge).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, user.ID, "CREATE_CARTRIDGE_MODEL", "cartridge_models", cartridge.ID, nil, gin.H{
		"model_name":       cartridge.ModelName,
		"printer_model_id": cartridge.PrinterModelID,
		"type":             cartridge.Type,
	})

	c.JSON(http.StatusOK, gin.H{"message": "cartridge model created successfully", "cartridge": cartridge})
}
