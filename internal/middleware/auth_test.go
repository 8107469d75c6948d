package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"printcare/internal/models"
)

func gateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("printcare_session", store))

	// test-only login endpoint: establishes a session for the given role
	r.POST("/test/session", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set(SessionUserID, uint(1))
		sess.Set(SessionUsername, "tester")
		sess.Set(SessionRole, c.Query("role"))
		if err := sess.Save(); err != nil {
			t.Fatalf("save session: %v", err)
		}
		c.Status(http.StatusOK)
	})

	r.GET("/login", func(c *gin.Context) {
		c.String(http.StatusOK, "login page")
	})

	dashboard := r.Group("/dashboard")
	dashboard.Use(PageGate())
	dashboard.GET("", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	dashboard.GET("/admin/users", func(c *gin.Context) { c.String(http.StatusOK, "admin users") })
	dashboard.GET("/mis/reports", func(c *gin.Context) { c.String(http.StatusOK, "mis reports") })

	api := r.Group("/api")
	api.Use(RequireAPIAuth())
	api.GET("/clients", func(c *gin.Context) { c.String(http.StatusOK, "clients") })
	admin := api.Group("/admin")
	admin.Use(RequireAPIRole(models.RoleAdmin))
	admin.GET("/users", func(c *gin.Context) { c.String(http.StatusOK, "users") })

	return r
}

func loginAs(t *testing.T, r *gin.Engine, role models.Role) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/test/session?role="+string(role), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("session setup failed: %d", rec.Code)
	}
	return rec.Result().Cookies()
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPageGateRedirectsWithoutSession(t *testing.T) {
	r := gateRouter(t)

	for _, path := range []string{"/dashboard", "/dashboard/admin/users", "/dashboard/mis/reports"} {
		rec := get(r, path, nil)
		if rec.Code != http.StatusFound {
			t.Errorf("%s: got %d, want 302", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("%s: redirected to %q, want /login", path, loc)
		}
	}
}

func TestPageGateRewritesOnRoleFailure(t *testing.T) {
	r := gateRouter(t)
	cookies := loginAs(t, r, models.RoleManager)

	rec := get(r, "/dashboard/admin/users", cookies)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", rec.Code)
	}
	// a rewrite, not a redirect: the unauthorized view is served in place
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Fatalf("unexpected redirect to %q", loc)
	}
	if !strings.Contains(rec.Body.String(), "Unauthorized") {
		t.Fatalf("expected unauthorized view, got: %s", rec.Body.String())
	}
}

func TestPageGateRoleMatrix(t *testing.T) {
	r := gateRouter(t)

	tests := []struct {
		role models.Role
		path string
		want int
	}{
		{models.RoleAdmin, "/dashboard/admin/users", http.StatusOK},
		{models.RoleManager, "/dashboard/admin/users", http.StatusForbidden},
		{models.RoleAdmin, "/dashboard/mis/reports", http.StatusOK},
		{models.RoleManager, "/dashboard/mis/reports", http.StatusOK},
		{models.RoleEmployee, "/dashboard/mis/reports", http.StatusForbidden},
		{models.RoleEmployee, "/dashboard", http.StatusOK},
		{models.RoleClient, "/dashboard", http.StatusOK},
		{models.RoleClient, "/dashboard/admin/users", http.StatusForbidden},
	}

	for _, tc := range tests {
		cookies := loginAs(t, r, tc.role)
		rec := get(r, tc.path, cookies)
		if rec.Code != tc.want {
			t.Errorf("%s as %s: got %d, want %d", tc.path, tc.role, rec.Code, tc.want)
		}
	}
}

func TestLoginPageAlwaysReachable(t *testing.T) {
	r := gateRouter(t)

	if rec := get(r, "/login", nil); rec.Code != http.StatusOK {
		t.Fatalf("anonymous /login: got %d, want 200", rec.Code)
	}
	cookies := loginAs(t, r, models.RoleClient)
	if rec := get(r, "/login", cookies); rec.Code != http.StatusOK {
		t.Fatalf("authenticated /login: got %d, want 200", rec.Code)
	}
}

func TestAPIGate(t *testing.T) {
	r := gateRouter(t)

	if rec := get(r, "/api/clients", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous API request: got %d, want 401", rec.Code)
	}

	employee := loginAs(t, r, models.RoleEmployee)
	if rec := get(r, "/api/clients", employee); rec.Code != http.StatusOK {
		t.Fatalf("authenticated API request: got %d, want 200", rec.Code)
	}
	if rec := get(r, "/api/admin/users", employee); rec.Code != http.StatusForbidden {
		t.Fatalf("employee on admin API: got %d, want 403", rec.Code)
	}

	admin := loginAs(t, r, models.RoleAdmin)
	if rec := get(r, "/api/admin/users", admin); rec.Code != http.StatusOK {
		t.Fatalf("admin on admin API: got %d, want 200", rec.Code)
	}
}
