package models

import "time"

// Ownership joins users to the projects they own. The composite primary key
// guarantees a user owns a given project at most once.
type Ownership struct {
	ProjectID uint `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}
