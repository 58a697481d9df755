package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task types produced by the client-side schedule generator
const (
	TaskTypeWeekly = "weekly"
	TaskTypeFTThaw = "ft-thaw"
	TaskTypeFTTest = "ft-test"
)

// Task represents a single testing step for a product. Deletion is a
// flag flip: deleted tasks stay in the table and can be restored.
// DeletedAt is a plain timestamp on purpose so GORM's soft-delete
// machinery never hides rows from the restore path.
type Task struct {
	ID        string `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string `json:"userId" gorm:"type:uuid;not null;index"`
	ProductID string `json:"productId" gorm:"type:uuid;not null;index"`
	Name      string `json:"name" gorm:"not null"`
	Type      string `json:"type" gorm:"type:varchar(50);not null"`

	// Stored as YYYY-MM-DD string to match the client's expectations
	DueDate string `json:"dueDate" gorm:"type:varchar(50);not null"`

	// 'Initial', 'Week 1', 'Cycle 1', etc.
	Cycle string `json:"cycle" gorm:"type:varchar(100);default:null"`

	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completedAt" gorm:"default:null"`
	Deleted     bool       `json:"deleted" gorm:"default:false;index"`
	DeletedAt   *time.Time `json:"deletedAt" gorm:"default:null"`

	CreatedAt time.Time `json:"createdAt"`

	// Relations
	User    User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the primary key before insert
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
