package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"printcare/internal/database"
	"printcare/internal/httperr"
	"printcare/internal/models"
)

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// defaultTaxRate reads DEFAULT_TAX_RATE from settings, falling back to 18%.
func defaultTaxRate() float64 {
	var setting models.Setting
	err := database.DB.
		Where("key = ?", models.SettingDefaultTaxRate).
		First(&setting).Error
	if err != nil {
		return 18
	}
	rate, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || rate < 0 {
		return 18
	}
	return rate
}

func ListInvoices(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	q := database.DB.Preload("Client").Order("created_at desc")

	if user.Role == models.RoleClient {
		if user.ClientID == nil {
			c.JSON(http.StatusOK, gin.H{"invoices": []models.Invoice{}})
			return
		}
		q = q.Where("client_id = ?", *user.ClientID)
	} else if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", strings.ToUpper(status))
	}

	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

type createInvoiceRequest struct {
	ClientID uint    `json:"client_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Notes    string  `json:"notes"`
}

// CreateInvoice creates a DRAFT invoice. Tax is computed from the configured
// default rate at creation time and fixed on the invoice thereafter.
func CreateInvoice(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("client id and a positive amount are required"))
		return
	}

	var client models.Client
	if err := database.DB.First(&client, req.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "client not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	rate := defaultTaxRate()
	tax := round2(req.Amount * rate / 100)

	invoice := models.Invoice{
		Number:    newInvoiceNumber(),
		Status:    models.InvoiceDraft,
		ClientID:  req.ClientID,
		Amount:    round2(req.Amount),
		TaxRate:   rate,
		TaxAmount: tax,
		Total:     round2(req.Amount + tax),
		Notes:     strings.TrimSpace(req.Notes),
	}
	if err := database.DB.Create(&invoice).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, user.ID, "CREATE_INVOICE", "invoices", invoice.ID, nil, gin.H{
		"number":    invoice.Number,
		"client_id": invoice.ClientID,
		"total":     invoice.Total,
	})

	c.JSON(http.StatusOK, gin.H{"message": "invoice created successfully", "invoice": invoice})
}

// transitionInvoice applies one status change, enforcing the allowed
// transitions (PAID and CANCELLED invoices are immutable).
func transitionInvoice(c *gin.Context, next models.InvoiceStatus, action string) {
	user, ok := actor(c)
	if !ok {
		return
	}

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid invoice id"))
		return
	}

	var invoice models.Invoice
	if err := database.DB.First(&invoice, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "invoice not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	if !invoice.Status.CanTransitionTo(next) {
		httperr.Respond(c, httperr.Conflict(
			"cannot move invoice from "+string(invoice.Status)+" to "+string(next)))
		return
	}

	old := gin.H{"status": invoice.Status}

	now := time.Now().UTC()
	invoice.Status = next
	switch next {
	case models.InvoiceIssued:
		invoice.IssuedAt = &now
	case models.InvoicePaid:
		invoice.PaidAt = &now
	}

	if err := database.DB.Save(&invoice).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, user.ID, action, "invoices", invoice.ID, old, gin.H{
		"status": invoice.Status,
	})

	c.JSON(http.StatusOK, gin.H{"message": "invoice updated successfully", "invoice": invoice})
}

func IssueInvoice(c *gin.Context) {
	transitionInvoice(c, models.InvoiceIssued, "ISSUE_INVOICE")
}

func PayInvoice(c *gin.Context) {
	transitionInvoice(c, models.InvoicePaid, "PAY_INVOICE")
}

func CancelInvoice(c *gin.Context) {
	transitionInvoice(c, models.InvoiceCancelled, "CANCEL_INVOICE")
}
