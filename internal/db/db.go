package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/config"
	"github.com/garagehub/garage-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Role{},
		&models.Garage{},
		&models.User{},
		&models.Service{},
		&models.Sparepart{},
		&models.Transaction{},
		&models.AuditLog{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}

	if err := SeedRoles(db); err != nil {
		logrus.WithError(err).Fatal("failed to seed roles")
	}

	return db
}

// SeedRoles inserts the well-known role set. Safe to run on every startup.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{"Admin", "Technician", "Customer"} {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
