package models

import (
	"time"
)

// User's ID is never auto-assigned: it is always the value derived from the
// external identifier at signup, so the same external id resolves to the same
// row across create and lookup.
type User struct {
	ID        uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // stored verbatim, never hashed

	// Relationships
	Projects []Project `gorm:"many2many:ownerships;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
