package accounts_models

import (
	"time"

	"github.com/google/uuid"
)

// Account is the top-level tenant boundary. Accounts are provisioned by
// an upstream service; this core only needs the row to exist before a
// workspace can bind to it.
type Account struct {
	ID        uuid.UUID         `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	CreatedOn time.Time         `json:"createdOn" gorm:"column:created_on;not null"`
	Settings  map[string]string `json:"settings"  gorm:"column:settings;type:jsonb;serializer:json"`
}

func (Account) TableName() string {
	return "accounts"
}
