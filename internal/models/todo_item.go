package models

import (
	"time"

	"gorm.io/gorm"
)

type TodoItem struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description string
	Completed   bool `gorm:"default:false"`
	DueDate     *time.Time
	ProjectID   uint `gorm:"not null;index"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
