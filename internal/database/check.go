package database

import (
	"fmt"

	"gorm.io/gorm"

	"printcare/internal/models"
)

// CheckResult describes one connectivity/schema probe.
type CheckResult struct {
	Name   string
	OK     bool
	Detail string
}

// Check probes the database: connectivity, raw query execution, presence and
// row count of every migrated table, and whether an admin account exists.
// Used by cmd/dbcheck.
func Check(db *gorm.DB) []CheckResult {
	var results []CheckResult

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return append(results, CheckResult{Name: "connection", OK: false, Detail: err.Error()})
	}
	results = append(results, CheckResult{Name: "connection", OK: true, Detail: "ping ok"})

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		results = append(results, CheckResult{Name: "query", OK: false, Detail: err.Error()})
	} else {
		results = append(results, CheckResult{Name: "query", OK: true, Detail: "SELECT 1 ok"})
	}

	for _, m := range Models {
		name := tableName(db, m)
		if !db.Migrator().HasTable(m) {
			results = append(results, CheckResult{
				Name:   "table " + name,
				OK:     false,
				Detail: "missing (run the server once or migrate)",
			})
			continue
		}
		var count int64
		if err := db.Model(m).Count(&count).Error; err != nil {
			results = append(results, CheckResult{Name: "table " + name, OK: false, Detail: err.Error()})
			continue
		}
		results = append(results, CheckResult{
			Name:   "table " + name,
			OK:     true,
			Detail: fmt.Sprintf("%d rows", count),
		})
	}

	var admins int64
	err = db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&admins).Error
	switch {
	case err != nil:
		results = append(results, CheckResult{Name: "admin user", OK: false, Detail: err.Error()})
	case admins == 0:
		results = append(results, CheckResult{Name: "admin user", OK: false, Detail: "no admin account (run cmd/seed)"})
	default:
		results = append(results, CheckResult{Name: "admin user", OK: true, Detail: fmt.Sprintf("%d admin(s)", admins)})
	}

	return results
}

func tableName(db *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Table
}
