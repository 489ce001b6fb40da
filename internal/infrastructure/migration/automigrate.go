// Package migration manages schema migration for the MySQL store.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"propdesk/internal/infrastructure/persistence/models"
	"propdesk/internal/shared/logger"
)

// AutoMigrateModels lists every model the schema carries, in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TenantModel{},
		&models.PropertyModel{},
		&models.UnitModel{},
		&models.ContractorModel{},
		&models.ContractorPropertyModel{},
		&models.TicketModel{},
		&models.MessageModel{},
		&models.TriageResultModel{},
	}
}

// Run applies GORM AutoMigrate for all models.
func Run(db *gorm.DB, log logger.Interface) error {
	migrationModels := AutoMigrateModels()
	log.Infow("starting database migration", "models_count", len(migrationModels))

	if err := db.AutoMigrate(migrationModels...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Infow("database migration completed")
	return nil
}
