package migration

import (
	"fmt"

	"gorm.io/gorm"

	"propdesk/internal/infrastructure/persistence/models"
	"propdesk/internal/shared/logger"
)

// SeedDefaultTenant creates an initial tenant when the table is empty, so a
// fresh install can resolve requests before any onboarding has happened.
func SeedDefaultTenant(db *gorm.DB, log logger.Interface) error {
	var count int64
	if err := db.Model(&models.TenantModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count tenants: %w", err)
	}
	if count > 0 {
		return nil
	}

	tenant := models.TenantModel{
		Name: "Default Workspace",
		Slug: "default",
	}
	if err := db.Create(&tenant).Error; err != nil {
		return fmt.Errorf("failed to seed default tenant: %w", err)
	}

	log.Infow("seeded default tenant", "tenant_id", tenant.ID, "slug", tenant.Slug)
	return nil
}
