package invitations_models

import (
	"time"

	users_models "tofu-workspaces-backend/internal/features/users/models"

	"github.com/google/uuid"
)

// Invitation tracks a pending onboarding for a provisional user. The
// linked user row exists from the moment the invitation is created but
// carries only an email until consumption.
type Invitation struct {
	ID             uuid.UUID  `json:"id"             gorm:"column:id;primaryKey;type:uuid"`
	ActivationCode string     `json:"activationCode" gorm:"column:activation_code;not null;type:varchar(255)"`
	Email          string     `json:"email"          gorm:"column:email;not null;type:varchar(255)"`
	ConsumedOn     *time.Time `json:"consumedOn"     gorm:"column:consumed_on"`
	LinkedUserID   uuid.UUID  `json:"linkedUserId"   gorm:"column:linked_user_id;not null;type:uuid"`
	CreatedOn      time.Time  `json:"createdOn"      gorm:"column:created_on;not null"`
	LastUpdatedOn  time.Time  `json:"lastUpdatedOn"  gorm:"column:last_updated_on;not null"`

	LinkedUser *users_models.User `json:"linkedUser,omitempty" gorm:"foreignKey:LinkedUserID"`
}

func (Invitation) TableName() string {
	return "invitations"
}

// IsConsumed reports whether the invitation has already been used.
// Consumption happens exactly once.
func (i *Invitation) IsConsumed() bool {
	return i.ConsumedOn != nil
}
