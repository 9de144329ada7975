package preferences_models

import (
	"time"

	users_models "tofu-workspaces-backend/internal/features/users/models"

	"github.com/google/uuid"
)

// Profile is a user's chosen value for a preference.
type Profile struct {
	ID            uuid.UUID `json:"id"            gorm:"column:id;primaryKey;type:uuid"`
	OwnerID       uuid.UUID `json:"ownerId"       gorm:"column:owner_id;not null;type:uuid;index"`
	PreferenceID  uuid.UUID `json:"preferenceId"  gorm:"column:preference_id;not null;type:uuid"`
	Value         string    `json:"value"         gorm:"column:value;not null;type:varchar(255)"`
	CreatedOn     time.Time `json:"createdOn"     gorm:"column:created_on;not null"`
	LastUpdatedOn time.Time `json:"lastUpdatedOn" gorm:"column:last_updated_on;not null"`

	Owner      *users_models.User `json:"owner,omitempty"      gorm:"foreignKey:OwnerID"`
	Preference *Preference        `json:"preference,omitempty" gorm:"foreignKey:PreferenceID"`
}

func (Profile) TableName() string {
	return "profiles"
}
