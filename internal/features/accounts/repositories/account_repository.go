package accounts_repositories

import (
	"errors"
	"time"

	accounts_models "tofu-workspaces-backend/internal/features/accounts/models"
	"tofu-workspaces-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository struct{}

func (r *AccountRepository) CreateAccount(account *accounts_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	if account.CreatedOn.IsZero() {
		account.CreatedOn = time.Now().UTC()
	}

	if account.Settings == nil {
		account.Settings = map[string]string{}
	}

	return storage.GetDb().Create(account).Error
}

func (r *AccountRepository) GetAccountByID(
	accountID uuid.UUID,
) (*accounts_models.Account, error) {
	var account accounts_models.Account

	if err := storage.GetDb().Where("id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &account, nil
}

func (r *AccountRepository) UpdateAccount(account *accounts_models.Account) error {
	return storage.GetDb().Save(account).Error
}

func (r *AccountRepository) DeleteAccount(accountID uuid.UUID) error {
	return storage.GetDb().Where("id = ?", accountID).Delete(&accounts_models.Account{}).Error
}
