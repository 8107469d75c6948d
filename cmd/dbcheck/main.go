// Dbcheck probes database connectivity and schema state without touching
// anything: connection, raw query, table presence and row counts, and
// whether an admin account exists.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"printcare/internal/database"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DB_DSN is not set")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL connection: %v\n", err)
		fmt.Fprintln(os.Stderr, "check that postgres is running and DB_DSN is correct")
		os.Exit(1)
	}

	failed := false
	for _, res := range database.Check(db) {
		status := "OK  "
		if !res.OK {
			status = "FAIL"
			failed = true
		}
		fmt.Printf("%s %-28s %s\n", status, res.Name, res.Detail)
	}

	if failed {
		os.Exit(1)
	}
}
