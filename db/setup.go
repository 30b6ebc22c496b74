package db

import (
	"github.com/ideahub-dev/ideahub/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the store client. The returned handle is passed down to the
// router and stores explicitly; there is no package-level instance.
// TranslateError makes unique-key violations surface as gorm.ErrDuplicatedKey,
// so the database's constraints, not application pre-checks, are the final
// authority on uniqueness races.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return nil, err
	}

	return gdb, nil
}

// Migrate registers the explicit join model for the owners relation and
// creates any missing tables.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.SetupJoinTable(&models.User{}, "Projects", &models.Ownership{}); err != nil {
		return err
	}

	if err := gdb.SetupJoinTable(&models.Project{}, "Owners", &models.Ownership{}); err != nil {
		return err
	}

	tables := []interface{}{
		&models.User{},
		&models.Project{},
		&models.Ownership{},
		&models.TodoItem{},
		&models.ProjectElement{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
