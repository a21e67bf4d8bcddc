package repositories

import (
	"fmt"
	"log/slog"

	"github.com/rohits-web03/cellportal/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the Postgres database at dsn and migrates it.
// Callers do not need to call Migrate again.
func ConnectDatabase(dsn string) (*gorm.DB, error) {
	return openDatabase(postgres.Open(dsn))
}

func openDatabase(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	slog.Info("Successfully connected to database")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Study{},
		&models.StudyShare{},
		&models.StudyFile{},
		&models.DirectoryListing{},
		&models.DirectoryFile{},
		&models.DownloadAgreement{},
		&models.DownloadAcceptance{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
