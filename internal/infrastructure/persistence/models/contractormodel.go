package models

import "gorm.io/datatypes"

type ContractorModel struct {
	ID              uint           `gorm:"primaryKey"`
	TenantID        uint           `gorm:"not null;index"`
	Name            string         `gorm:"size:200;not null"`
	Email           string         `gorm:"size:320"`
	Phone           string         `gorm:"size:50"`
	TradeTypes      datatypes.JSON `gorm:"not null"`
	ServiceZipCodes datatypes.JSON
	ServiceCities   datatypes.JSON
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ContractorModel) TableName() string {
	return "contractors"
}

// ContractorPropertyModel is the explicit join between contractors and the
// properties they are preferred for.
type ContractorPropertyModel struct {
	ContractorID uint `gorm:"primaryKey;autoIncrement:false"`
	PropertyID   uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (ContractorPropertyModel) TableName() string {
	return "contractor_properties"
}
