package store

import (
	"errors"

	"github.com/ideahub-dev/ideahub/internal/identity"
	"github.com/ideahub-dev/ideahub/internal/models"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create registers a user under the id derived from externalID. The username
// pre-check closes the common case early; the unique index on username is the
// final authority when two signups race (the loser sees gorm.ErrDuplicatedKey
// at commit).
func (s *UserStore) Create(externalID, username, password string) (*models.User, error) {
	user := models.User{
		ID:       identity.DeriveID(externalID),
		Username: username,
		Password: password,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User

		err := tx.Where("username = ?", username).First(&existing).Error

		if err == nil {
			return ErrDuplicateUsername
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return unavailable(err)
		}

		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateUsername
			}
			return unavailable(err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate looks the user up by username and compares the stored password
// for equality. The comparison is opaque string equality; nothing is hashed.
func (s *UserStore) Authenticate(username, password string) (*models.User, error) {
	var user models.User

	err := s.db.Preload("Projects").Where("username = ?", username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, unavailable(err)
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s *UserStore) GetByID(id uint) (*models.User, error) {
	var user models.User

	err := s.db.Preload("Projects").First(&user, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, unavailable(err)
	}

	return &user, nil
}

// GetByExternalID resolves the external identifier through id derivation and
// loads the matching row.
func (s *UserStore) GetByExternalID(externalID string) (*models.User, error) {
	return s.GetByID(identity.DeriveID(externalID))
}

func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	var user models.User

	err := s.db.Preload("Projects").Where("username = ?", username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, unavailable(err)
	}

	return &user, nil
}
