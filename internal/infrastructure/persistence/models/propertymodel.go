package models

type PropertyModel struct {
	ID        uint   `gorm:"primaryKey"`
	TenantID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:200;not null"`
	Street    string `gorm:"size:300"`
	ZipCode   string `gorm:"size:20;index"`
	City      string `gorm:"size:100;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PropertyModel) TableName() string {
	return "properties"
}

type UnitModel struct {
	ID         uint   `gorm:"primaryKey"`
	PropertyID uint   `gorm:"not null;index"`
	Label      string `gorm:"size:100;not null"`
}

func (UnitModel) TableName() string {
	return "property_units"
}
