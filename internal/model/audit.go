package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionCreateImportOrder       = "CREATE_IMPORT_ORDER"
	ActionUpdateImportOrder       = "UPDATE_IMPORT_ORDER"
	ActionChangeImportOrderStatus = "CHANGE_IMPORT_ORDER_STATUS"
	ActionDeleteImportOrder       = "DELETE_IMPORT_ORDER"
)

// AuditLog tracks Who, What, and When for import order changes
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable when the actor is unknown
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Order number
	Details    string     `gorm:"type:text" json:"details"`                       // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
