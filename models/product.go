package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FTCycleType represents the freeze/thaw cadence of a product
type FTCycleType string

const (
	FTCycleConsecutive FTCycleType = "consecutive"
	FTCycleWeekly      FTCycleType = "weekly"
	FTCycleBiweekly    FTCycleType = "biweekly"
	FTCycleCustom      FTCycleType = "custom"
)

// Product represents a product under stability testing
type Product struct {
	ID     string `json:"id" gorm:"primaryKey;type:uuid"`
	UserID string `json:"userId" gorm:"type:uuid;not null;index"`
	Name   string `json:"name" gorm:"not null"`

	Assignee string `json:"assignee" gorm:"not null"`

	// Stored as YYYY-MM-DD string to match the client's expectations
	StartDate string `json:"startDate" gorm:"type:varchar(50);not null"`

	// Optional schedule template reference; cleared when the template is deleted
	ScheduleTemplateID *string `json:"scheduleTemplateId" gorm:"type:uuid;default:null"`

	FTCycleType   FTCycleType `json:"ftCycleType" gorm:"column:ft_cycle_type;type:varchar(20);default:'consecutive'"`
	FTCycleCustom JSONPayload `json:"ftCycleCustom" gorm:"column:ft_cycle_custom;type:jsonb;default:null"`

	CreatedAt time.Time `json:"createdAt"`

	// Relations
	User             User              `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ScheduleTemplate *ScheduleTemplate `json:"scheduleTemplate,omitempty" gorm:"foreignKey:ScheduleTemplateID;constraint:OnDelete:SET NULL"`
	Tasks            []Task            `json:"tasks,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the primary key before insert
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
