package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jmkbeauty/salon-booking/internal/config"
	"github.com/jmkbeauty/salon-booking/internal/models"
	"github.com/jmkbeauty/salon-booking/internal/timezone"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.SalonSettings{},
		&models.User{},
		&models.Service{},
		&models.Stylist{},
		&models.StylistWorkingHours{},
		&models.Booking{},
		&models.Appointment{},
		&models.Testimonial{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	seedSettings(db, log)

	return db
}

// seedSettings guarantees the single settings row the availability
// engine reads its business window from.
func seedSettings(db *gorm.DB, log zerolog.Logger) {
	var count int64
	db.Model(&models.SalonSettings{}).Count(&count)
	if count > 0 {
		return
	}

	settings := models.SalonSettings{
		Name:              "JMK Beauty Salon",
		Timezone:          timezone.DefaultTimezone,
		BusinessStart:     "09:00",
		BusinessEnd:       "20:00",
		SlotStepMinutes:   30,
		MinAdvanceMinutes: 60,
	}

	if err := db.Create(&settings).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed salon settings")
	}
}
