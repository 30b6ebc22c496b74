package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	// Name is only unique per owner; two users may each have a project with
	// the same name.
	Name string `gorm:"index;not null"`

	// Relationships
	Owners   []User           `gorm:"many2many:ownerships;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Todos    []TodoItem       `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Elements []ProjectElement `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
