package database

import (
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"printcare/internal/auth"
	"printcare/internal/logger"
	"printcare/internal/models"
)

var DB *gorm.DB

// Models lists every table the server migrates, in dependency order.
var Models = []interface{}{
	&models.User{},
	&models.City{},
	&models.Client{},
	&models.PrinterModel{},
	&models.CartridgeModel{},
	&models.ServiceTicket{},
	&models.Invoice{},
	&models.Setting{},
	&models.AuditLog{},
}

func Init(dsn string) {
	log := logger.Get()

	var err error
	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Info().Int("attempt", i).Int("max", maxAttempts).Msg("connecting to database")

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err == nil {
			log.Info().Msg("connected to database")
			break
		}

		log.Warn().Err(err).Msg("database connection failed")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatal().Err(err).Int("attempts", maxAttempts).Msg("giving up connecting to database")
	}

	if err := DB.AutoMigrate(Models...); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ensureDefaultAdmin()
}

// ensureDefaultAdmin creates the bootstrap administrator when no ADMIN
// account exists. Credentials come from the environment so deployments can
// override the defaults.
func ensureDefaultAdmin() {
	log := logger.Get()

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@printcare.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Error().Err(err).Msg("failed to check for admin user")
		return
	}
	if count > 0 {
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash default admin password")
		return
	}

	admin := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("failed to create default admin")
		return
	}

	log.Info().Str("username", username).Msg("created default admin user")
}
