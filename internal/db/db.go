package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/blackline-studio/tattoo-scheduler/internal/config"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.UserRole{},
		&models.ArtistService{},
		&models.WeeklyAvailability{},
		&models.DateOverride{},
		&models.Appointment{},
		&models.PortfolioWork{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// The conflict assert scans one artist-day at a time; keep that
	// lookup indexed.
	db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_appointments_artist_date
        ON appointments (artist_id, date)
    `)

	return db
}
