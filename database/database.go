package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskhub/auth"
	"taskhub/config"
	"taskhub/models"
)

var DB *gorm.DB

// InitDB opens the configured database, runs migrations and seeds the
// administrator account. The driver is chosen by configuration; sqlite is
// the default and matches the file the service has always used.
func InitDB() *gorm.DB {
	cfg := config.AppConfig

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DatabaseURL)
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		panic(fmt.Errorf("unsupported database driver: %q", cfg.DatabaseDriver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	if err := db.AutoMigrate(&models.User{}, &models.Todo{}); err != nil {
		panic(fmt.Errorf("failed to migrate database: %w", err))
	}

	DB = db
	SeedAdmin(db, cfg.AdminSeed)
	return db
}

// SeedAdmin creates the administrator account from configuration if it does
// not exist yet. An incomplete seed block skips seeding silently; a missing
// admin is an operational choice, not a startup failure.
func SeedAdmin(db *gorm.DB, seed config.AdminSeed) {
	if !seed.Complete() {
		return
	}

	var existing models.User
	err := db.Where("username = ?", seed.Username).First(&existing).Error
	if err == nil {
		return // admin already exists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check for admin user: %v\n", err)
		return
	}

	digest, err := auth.HashPassword(seed.Password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v\n", err)
		return
	}

	admin := models.User{
		Username:       seed.Username,
		Email:          seed.Email,
		FirstName:      seed.FirstName,
		LastName:       seed.LastName,
		HashedPassword: digest,
		Role:           models.RoleAdmin,
		IsActive:       true,
		PhoneNumber:    seed.Phone,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to create initial admin user: %v\n", err)
		return
	}
	log.Println("Created initial admin user.")
}
