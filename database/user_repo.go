package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rvieira/portfolio-cms/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *UserRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByEmail returns a user by email, or nil when no row matches
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return r.db.Create(user).Error
}

// UpdatePassword replaces the stored password hash for a user
func (r *UserRepo) UpdatePassword(email, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("email = ?", email).
		Update("password", passwordHash).Error
}

// EnsureUser creates the user if no row with its email exists yet. Existing
// rows are left untouched so a redeploy never resets credentials.
func (r *UserRepo) EnsureUser(user *models.User) error {
	existing, err := r.FindByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return r.Add(user)
}
