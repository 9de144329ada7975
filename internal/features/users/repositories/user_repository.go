package users_repositories

import (
	"errors"
	"time"

	users_models "tofu-workspaces-backend/internal/features/users/models"
	"tofu-workspaces-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	now := time.Now().UTC()
	if user.CreatedOn.IsZero() {
		user.CreatedOn = now
	}
	user.LastUpdatedOn = now

	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateUser(user *users_models.User) error {
	user.LastUpdatedOn = time.Now().UTC()

	return storage.GetDb().Save(user).Error
}

func (r *UserRepository) DeleteUser(userID uuid.UUID) error {
	return storage.GetDb().Where("id = ?", userID).Delete(&users_models.User{}).Error
}
