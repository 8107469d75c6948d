package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"printcare/internal/config"
	"printcare/internal/database"
	"printcare/internal/handlers"
	"printcare/internal/middleware"
	"printcare/internal/models"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	registerValidations()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog())

	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(config.SessionMaxAge.Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("printcare_session", store))

	r.Use(middleware.InjectUser(database.DB))

	// PAGES
	r.GET("/", handlers.IndexPage)
	r.GET("/login", handlers.LoginPage)

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.PageGate())
	dashboard.GET("", handlers.DashboardPage)
	dashboard.GET("/admin", handlers.AdminPage)
	dashboard.GET("/mis", handlers.MISPage)
	dashboard.GET("/unauthorized", handlers.UnauthorizedPage)

	// AUTH
	r.POST("/api/auth/login", handlers.Login)
	r.POST("/api/auth/logout", handlers.Logout)

	// connectivity probe, deliberately outside the auth gate
	r.GET("/api/test", handlers.APITest)

	api := r.Group("/api")
	api.Use(middleware.RequireAPIAuth())

	api.GET("/auth/me", handlers.Me)

	// ADMINISTRATION
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAPIRole(models.RoleAdmin))
	admin.GET("/users", handlers.ListUsers)
	admin.POST("/users", handlers.CreateUser)
	admin.PUT("/users", handlers.UpdateUser)
	admin.DELETE("/users", handlers.DeleteUser)
	admin.POST("/reset-password", handlers.ResetPassword)
	admin.GET("/cities", handlers.ListCities)
	admin.POST("/cities", handlers.CreateCity)
	admin.PUT("/cities", handlers.UpdateCity)
	admin.DELETE("/cities", handlers.DeleteCity)
	admin.GET("/settings", handlers.ListSettings)
	admin.PUT("/settings", handlers.UpdateSetting)
	admin.GET("/audit", handlers.ListAuditLogs)
	admin.GET("/audit/export", handlers.ExportAuditLogs)

	// CLIENTS
	api.GET("/clients", handlers.ListClients)
	api.GET("/clients/:id", handlers.GetClient)
	manage := middleware.RequireAPIRole(models.RoleAdmin, models.RoleManager)
	api.POST("/clients", manage, handlers.CreateClient)
	api.PUT("/clients/:id", manage, handlers.UpdateClient)
	api.DELETE("/clients", manage, handlers.DeleteClient)

	// CATALOG
	api.GET("/printers", handlers.ListPrinterModels)
	api.POST("/printers", manage, handlers.CreatePrinterModel)
	api.GET("/cartridges", handlers.ListCartridgeModels)
	api.POST("/cartridges", manage, handlers.CreateCartridgeModel)

	// SERVICE TICKETS
	api.GET("/tickets", handlers.ListTickets)
	api.POST("/tickets", handlers.CreateTicket)
	api.PUT("/tickets/:id", manage, handlers.UpdateTicket)

	// BILLING
	api.GET("/invoices", handlers.ListInvoices)
	api.POST("/invoices", manage, handlers.CreateInvoice)
	api.POST("/invoices/:id/issue", manage, handlers.IssueInvoice)
	api.POST("/invoices/:id/pay", manage, handlers.PayInvoice)
	api.POST("/invoices/:id/cancel", manage, handlers.CancelInvoice)

	// STATUS
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
