package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"printcare/internal/database"
	"printcare/internal/httperr"
	"printcare/internal/models"
)

func newTicketNumber() string {
	return "TKT-" + strings.ToUpper(uuid.NewString()[:8])
}

// ListTickets returns service tickets, optionally filtered by status or
// client. CLIENT-role users only ever see their own client's tickets.
func ListTickets(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	q := database.DB.Preload("Client").Order("created_at desc")

	if user.Role == models.RoleClient {
		if user.ClientID == nil {
			c.JSON(http.StatusOK, gin.H{"tickets": []models.ServiceTicket{}})
			return
		}
		q = q.Where("client_id = ?", *user.ClientID)
	} else if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", strings.ToUpper(status))
	}

	var tickets []models.ServiceTicket
	if err := q.Find(&tickets).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

type createTicketRequest struct {
	ClientID       uint   `json:"client_id" binding:"required"`
	PrinterModelID *uint  `json:"printer_model_id"`
	Issue          string `json:"issue" binding:"required"`
	Priority       string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

func CreateTicket(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("client id and issue are required"))
		return
	}

	// CLIENT-role users can only raise tickets for their own client.
	if user.Role == models.RoleClient {
		if user.ClientID == nil || *user.ClientID != req.ClientID {
			httperr.Respond(c, httperr.ErrForbidden)
			return
		}
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

	if req.PrinterModelID != nil {
		var printer models.PrinterModel
		if err := database.DB.First(&printer, *req.PrinterModelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.New(httperr.KindNotFound, "printer model not found"))
				return
			}
			httperr.Respond(c, httperr.Internal(err))
			return
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = "MEDIUM"
	}

	ticket := models.ServiceTicket{
		Number:         newTicketNumber(),
		Status:         models.TicketOpen,
		ClientID:       req.ClientID,
		PrinterModelID: req.PrinterModelID,
		Issue:          strings.TrimSpace(req.Issue),
		Priority:       priority,
	}
	if err := database.DB.Create(&ticket).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, user.ID, "CREATE_TICKET", "service_tickets", ticket.ID, nil, gin.H{
		"number":    ticket.Number,
		"client_id": ticket.ClientID,
		"priority":  ticket.Priority,
	})

	c.JSON(http.StatusOK, gin.H{"message": "ticket created successfully", "ticket": ticket})
}

type updateTicketRequest struct {
	Status       string `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	AssignedToID *uint  `json:"assigned_to_id"`
	Resolution   string `json:"resolution"`
}

// UpdateTicket changes status, assignment or resolution. Status changes
// must follow the allowed transitions; anything else is rejected.
func UpdateTicket(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid ticket id"))
		return
	}

	var ticket models.ServiceTicket
	if err := database.DB.First(&ticket, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "ticket not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid ticket update"))
		return
	}

	old := gin.H{
		"status":         ticket.Status,
		"assigned_to_id": ticket.AssignedToID,
		"resolution":     ticket.Resolution,
	}

	if req.Status != "" {
		next := models.TicketStatus(req.Status)
		if next != ticket.Status && !ticket.Status.CanTransitionTo(next) {
			httperr.Respond(c, httperr.BadRequest(
				"cannot move ticket from "+string(ticket.Status)+" to "+string(next)))
			return
		}
		ticket.Status = next
	}

	if req.AssignedToID != nil {
		var assignee models.User
		if err := database.DB.First(&assignee, *req.AssignedToID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.New(httperr.KindNotFound, "assignee not found"))
				return
			}
			httperr.Respond(c, httperr.Internal(err))
			return
		}
		ticket.AssignedToID = req.AssignedToID
	}

	if req.Resolution != "" {
		ticket.Resolution = strings.TrimSpace(req.Resolution)
	}

	if err := database.DB.Save(&ticket).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, user.ID, "UPDATE_TICKET", "service_tickets", ticket.ID, old, gin.H{
		"status":         ticket.Status,
		"assigned_to_id": ticket.AssignedToID,
		"resolution":     ticket.Resolution,
	})

	c.JSON(http.StatusOK, gin.H{"message": "ticket updated successfully", "ticket": ticket})
}
