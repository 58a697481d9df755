package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleTemplate represents a reusable testing cadence expressed as a
// list of week numbers. Presets have no owner and are visible to all users.
type ScheduleTemplate struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID           *string   `json:"userId" gorm:"type:uuid;index;default:null"`
	Name             string    `json:"name" gorm:"not null"`
	Description      string    `json:"description" gorm:"default:null"`
	TestingIntervals WeekList  `json:"testingIntervals" gorm:"type:jsonb;default:'[]'"`
	IsPreset         bool      `json:"isPreset" gorm:"default:false;index"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the primary key before insert
func (t *ScheduleTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
