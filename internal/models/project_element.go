package models

import "gorm.io/gorm"

// ProjectElement holds one piece of freeform project content. Data is the
// canonical string encoding of the content and Type tags the original kind
// ("text", "image", ...) so callers can decode Data on read. Position defines
// display order within the project.
type ProjectElement struct {
	gorm.Model

	Data      string `gorm:"not null"`
	Type      string `gorm:"not null"`
	Position  int    `gorm:"not null"`
	ProjectID uint   `gorm:"not null;index"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
