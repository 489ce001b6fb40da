package models

type TicketModel struct {
	ID                uint    `gorm:"primaryKey"`
	TenantID          uint    `gorm:"not null;index"`
	Reference         string  `gorm:"uniqueIndex;size:50;not null"`
	Type              string  `gorm:"size:30;not null"`
	Status            string  `gorm:"size:30;not null;index"`
	Urgency           string  `gorm:"size:20;not null;index"`
	Category          *string `gorm:"size:50;index"`
	Description       string  `gorm:"type:text;not null"`
	ReporterName      string  `gorm:"size:200;not null"`
	ReporterEmail     string  `gorm:"size:320"`
	ReporterPhone     string  `gorm:"size:50"`
	PropertyID        *uint   `gorm:"index"`
	UnitLabel         string  `gorm:"size:100"`
	PermissionToEnter bool    `gorm:"not null;default:false"`
	CreatedAt         int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt         int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type MessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorKind string `gorm:"size:20;not null"`
	AuthorName string `gorm:"size:200;not null"`
	Body       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "ticket_messages"
}
