package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FTCycleTemplate represents a reusable custom freeze/thaw cycle definition
type FTCycleTemplate struct {
	ID          string `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string `json:"userId" gorm:"type:uuid;not null;index"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"default:null"`
	// Stored opaquely: clients submit either day-indexed cycle entries
	// or freeze/thaw hour counts, and both must round-trip unchanged
	Cycles      JSONPayload `json:"cycles" gorm:"type:jsonb;default:'[]'"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the abbreviation grouped in the table name
func (FTCycleTemplate) TableName() string {
	return "ft_cycle_templates"
}

// BeforeCreate assigns the primary key before insert
func (t *FTCycleTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
