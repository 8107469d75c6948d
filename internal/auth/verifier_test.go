package auth

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"printcare/internal/httperr"
	"printcare/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
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
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestAuthenticateSuccess(t *testing.T) {
	db := testDB(t)
	created := createUser(t, db, "ravi", "Pass@123", models.RoleManager)

	before := time.Now().UTC()
	identity, err := Authenticate(db, "ravi", "Pass@123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if identity.ID != created.ID || identity.Username != "ravi" || identity.Role != models.RoleManager {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	var stored models.User
	if err := db.First(&stored, created.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.LastLogin == nil {
		t.Fatal("last login was not recorded")
	}
	if stored.LastLogin.Before(before.Add(-time.Second)) {
		t.Fatalf("last login %v predates the login", stored.LastLogin)
	}
}

func TestAuthenticateLastLoginAdvances(t *testing.T) {
	db := testDB(t)
	created := createUser(t, db, "ravi", "Pass@123", models.RoleEmployee)

	if _, err := Authenticate(db, "ravi", "Pass@123"); err != nil {
		t.Fatal(err)
	}
	var first models.User
	if err := db.First(&first, created.ID).Error; err != nil {
		t.Fatal(err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := Authenticate(db, "ravi", "Pass@123"); err != nil {
		t.Fatal(err)
	}
	var second models.User
	if err := db.First(&second, created.ID).Error; err != nil {
		t.Fatal(err)
	}

	if !second.LastLogin.After(*first.LastLogin) {
		t.Fatalf("last login did not advance: %v then %v", first.LastLogin, second.LastLogin)
	}
}

// Unknown usernames, wrong passwords, empty fields and deactivated accounts
// must all fail identically, so a caller cannot enumerate valid usernames.
func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	db := testDB(t)
	createUser(t, db, "ravi", "Pass@123", models.RoleEmployee)

	inactive := createUser(t, db, "gone", "Pass@123", models.RoleEmployee)
	if err := db.Model(inactive).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "Pass@123"},
		{"wrong password", "ravi", "wrong"},
		{"empty username", "", "Pass@123"},
		{"empty password", "ravi", ""},
		{"inactive account", "gone", "Pass@123"},
	}

	for _, tc := range cases {
		identity, err := Authenticate(db, tc.username, tc.password)
		if identity != nil {
			t.Errorf("%s: got identity %+v", tc.name, identity)
		}
		if err != httperr.ErrInvalidCredentials {
			t.Errorf("%s: got error %v, want ErrInvalidCredentials", tc.name, err)
		}
	}
}
