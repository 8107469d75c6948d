package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"printcare/internal/auth"
	"printcare/internal/database"
	"printcare/internal/middleware"
	"printcare/internal/models"
)

// setupTest wires an in-memory database into the package-global handle and
// builds a router mirroring the production wiring for the routes under test.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.Models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return models.Role(fl.Field().String()).Valid()
		})
	}

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("printcare_session", store))
	r.Use(middleware.InjectUser(db))

	// test-only login: establishes a session for an existing user id
	r.POST("/test/session/:id", func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		sess := sessions.Default(c)
		sess.Set(middleware.SessionUserID, user.ID)
		sess.Set(middleware.SessionUsername, user.Username)
		sess.Set(middleware.SessionRole, string(user.Role))
		_ = sess.Save()
		c.Status(http.StatusOK)
	})

	r.POST("/api/auth/login", Login)
	r.POST("/api/auth/logout", Logout)
	r.GET("/api/test", APITest)

	api := r.Group("/api")
	api.Use(middleware.RequireAPIAuth())
	api.GET("/auth/me", Me)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAPIRole(models.RoleAdmin))
	admin.GET("/users", ListUsers)
	admin.POST("/users", CreateUser)
	admin.PUT("/users", UpdateUser)
	admin.DELETE("/users", DeleteUser)
	admin.POST("/reset-password", ResetPassword)
	admin.GET("/cities", ListCities)
	admin.POST("/cities", CreateCity)
	admin.GET("/audit", ListAuditLogs)

	manage := middleware.RequireAPIRole(models.RoleAdmin, models.RoleManager)
	api.GET("/clients", ListClients)
	api.POST("/clients", manage, CreateClient)
	api.GET("/invoices", ListInvoices)
	api.POST("/invoices", manage, CreateInvoice)
	api.POST("/invoices/:id/issue", manage, IssueInvoice)
	api.POST("/invoices/:id/pay", manage, PayInvoice)
	api.POST("/invoices/:id/cancel", manage, CancelInvoice)
	api.GET("/tickets", ListTickets)
	api.POST("/tickets", CreateTicket)
	api.PUT("/tickets/:id", manage, UpdateTicket)

	return r
}

func seedUser(t *testing.T, username, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	user := &models.User{
		Username:     username,
		Email:        username + "@printcare.com",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := database.DB.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func sessionFor(t *testing.T, r *gin.Engine, user *models.User) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/test/session/%d", user.ID), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("session setup failed: %d", rec.Code)
	}
	return rec.Result().Cookies()
}

func doJSON(r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func auditRecords(t *testing.T) []models.AuditLog {
	t.Helper()
	var records []models.AuditLog
	if err := database.DB.Order("id asc").Find(&records).Error; err != nil {
		t.Fatal(err)
	}
	return records
}
