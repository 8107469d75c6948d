package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"printcare/internal/database"
	"printcare/internal/middleware"
	"printcare/internal/models"
)

func IndexPage(c *gin.Context) {
	sess := sessions.Default(c)
	_, authed := sess.Get(middleware.SessionUserID).(uint)

	render(c, http.StatusOK, "index.html", gin.H{
		"isAuthed": authed,
	})
}

func LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

// DashboardPage shows the landing dashboard with headline counts.
func DashboardPage(c *gin.Context) {
	var clients, openTickets, dueInvoices int64
	database.DB.Model(&models.Client{}).Where("is_active = ?", true).Count(&clients)
	database.DB.Model(&models.ServiceTicket{}).
		Where("status IN ?", []models.TicketStatus{models.TicketOpen, models.TicketInProgress}).
		Count(&openTickets)
	database.DB.Model(&models.Invoice{}).
		Where("status = ?", models.InvoiceIssued).
		Count(&dueInvoices)

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"clients":     clients,
		"openTickets": openTickets,
		"dueInvoices": dueInvoices,
	})
}

func AdminPage(c *gin.Context) {
	var users int64
	database.DB.Model(&models.User{}).Count(&users)
	render(c, http.StatusOK, "dashboard_admin.html", gin.H{
		"userCount": users,
	})
}

func MISPage(c *gin.Context) {
	var invoices []models.Invoice
	database.DB.
		Preload("Client").
		Order("created_at desc").
		Limit(20).
		Find(&invoices)
	render(c, http.StatusOK, "dashboard_mis.html", gin.H{
		"invoices": invoices,
	})
}

func UnauthorizedPage(c *gin.Context) {
	render(c, http.StatusForbidden, "unauthorized.html", gin.H{
		"path": c.Request.URL.Path,
	})
}
