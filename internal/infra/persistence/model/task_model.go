package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskModel mirrors the 'tasks' table. UserID references users.id and is
// immutable after creation.
type TaskModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null"`
	Priority    string     `gorm:"type:varchar(20);not null"`
	Category    string     `gorm:"type:varchar(100)"`
	DueDate     *time.Time `gorm:"type:date"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `gorm:"not null;<-:create"`
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}

// BeforeCreate fills the status and priority defaults at persist time,
// keeping the invariant even for rows written outside the service layer.
func (m *TaskModel) BeforeCreate(_ *gorm.DB) error {
	if m.Status == "" {
		m.Status = "TODO"
	}
	if m.Priority == "" {
		m.Priority = "MEDIUM"
	}

	return nil
}
