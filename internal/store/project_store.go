package store

import (
	"errors"
	"time"

	"github.com/ideahub-dev/ideahub/internal/identity"
	"github.com/ideahub-dev/ideahub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TodoItemParams carries the writable fields of a todo item. Completed is
// deliberately absent: it is always false on write.
type TodoItemParams struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// ElementParams carries the writable fields of a project element. A nil
// Position means "use the input order".
type ElementParams struct {
	Data     string
	Type     string
	Position *int
}

type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const ownedByUser = "projects.id IN (SELECT project_id FROM ownerships WHERE user_id = ?)"

// Create inserts a project, its ownership row, and its child records in one
// transaction. The owner must already exist, and may not already own a
// project with the same name.
func (s *ProjectStore) Create(externalOwnerID, name string, todos []TodoItemParams, elements []ElementParams) (*models.Project, error) {
	ownerID := identity.DeriveID(externalOwnerID)

	var project models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var owner models.User

		// Locking the owner row serializes same-owner creates; without it the
		// name count below is check-then-act and two concurrent creates could
		// both commit the same name.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&owner, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOwnerNotFound
			}
			return unavailable(err)
		}

		var count int64

		err := tx.Model(&models.Project{}).
			Where("name = ?", name).
			Where(ownedByUser, owner.ID).
			Count(&count).Error

		if err != nil {
			return unavailable(err)
		}

		if count > 0 {
			return ErrDuplicateProjectName
		}

		project = models.Project{
			Name:     name,
			Owners:   []models.User{owner},
			Todos:    buildTodoItems(0, todos),
			Elements: buildElements(0, elements),
		}

		if err := tx.Create(&project).Error; err != nil {
			return unavailable(err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.GetByID(project.ID)
}

func (s *ProjectStore) GetByID(id uint) (*models.Project, error) {
	var project models.Project

	err := s.db.
		Preload("Owners").
		Preload("Todos").
		Preload("Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&project, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, unavailable(err)
	}

	return &project, nil
}

// ListByOwner returns every project the user owns. A user with no projects
// gets an empty list, not an error; only an unknown user is an error.
func (s *ProjectStore) ListByOwner(externalID string) ([]models.Project, error) {
	userID := identity.DeriveID(externalID)

	var user models.User

	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, unavailable(err)
	}

	var projects []models.Project

	err := s.db.
		Preload("Owners").
		Preload("Todos").
		Preload("Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where(ownedByUser, userID).
		Find(&projects).Error

	if err != nil {
		return nil, unavailable(err)
	}

	return projects, nil
}

// GetByOwnerAndName returns the first project owned by the user that matches
// name exactly.
func (s *ProjectStore) GetByOwnerAndName(externalID, name string) (*models.Project, error) {
	userID := identity.DeriveID(externalID)

	var project models.Project

	err := s.db.
		Where("name = ?", name).
		Where(ownedByUser, userID).
		First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, unavailable(err)
	}

	return s.GetByID(project.ID)
}

// Update replaces child collections wholesale: a non-nil list deletes every
// existing row of that kind for the project and inserts the new set; a nil
// list leaves that collection untouched. Both replacements commit together.
func (s *ProjectStore) Update(id uint, todos *[]TodoItemParams, elements *[]ElementParams) (*models.Project, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return unavailable(err)
		}

		if todos != nil {
			if err := tx.Unscoped().Where("project_id = ?", id).Delete(&models.TodoItem{}).Error; err != nil {
				return unavailable(err)
			}

			if items := buildTodoItems(id, *todos); len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return unavailable(err)
				}
			}
		}

		if elements != nil {
			if err := tx.Unscoped().Where("project_id = ?", id).Delete(&models.ProjectElement{}).Error; err != nil {
				return unavailable(err)
			}

			if items := buildElements(id, *elements); len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return unavailable(err)
				}
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// AddOwner appends the derived user to the project's owners. Appending an
// existing owner is a no-op; the composite primary key on ownerships is the
// hard backstop either way.
func (s *ProjectStore) AddOwner(projectID uint, externalUserID string) (*models.Project, error) {
	userID := identity.DeriveID(externalUserID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := tx.First(&project, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return unavailable(err)
		}

		var user models.User

		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return unavailable(err)
		}

		if err := tx.Model(&project).Association("Owners").Append(&user); err != nil {
			return unavailable(err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.GetByID(projectID)
}

func buildTodoItems(projectID uint, params []TodoItemParams) []models.TodoItem {
	items := make([]models.TodoItem, 0, len(params))

	for _, p := range params {
		items = append(items, models.TodoItem{
			Title:       p.Title,
			Description: p.Description,
			Completed:   false,
			DueDate:     p.DueDate,
			ProjectID:   projectID,
		})
	}

	return items
}

func buildElements(projectID uint, params []ElementParams) []models.ProjectElement {
	items := make([]models.ProjectElement, 0, len(params))

	for i, p := range params {
		position := i
		if p.Position != nil {
			position = *p.Position
		}

		items = append(items, models.ProjectElement{
			Data:      p.Data,
			Type:      p.Type,
			Position:  position,
			ProjectID: projectID,
		})
	}

	return items
}
