package workspaces_models

import (
	"time"

	accounts_models "tofu-workspaces-backend/internal/features/accounts/models"
	teams_models "tofu-workspaces-backend/internal/features/teams/models"
	users_models "tofu-workspaces-backend/internal/features/users/models"

	"github.com/google/uuid"
)

// Workspace is a named project space under an account, with exactly one
// admin user and a set of teams. The (account, name) pair is unique
// among enabled workspaces, enforced by a partial index in the schema.
type Workspace struct {
	ID            uuid.UUID `json:"id"            gorm:"column:id;primaryKey;type:uuid"`
	AccountID     uuid.UUID `json:"accountId"     gorm:"column:account_id;not null;type:uuid;index"`
	AdminID       uuid.UUID `json:"adminId"       gorm:"column:admin_id;not null;type:uuid"`
	Name          string    `json:"name"          gorm:"column:name;not null;type:varchar(255)"`
	Enabled       bool      `json:"enabled"       gorm:"column:enabled;not null;default:true"`
	CreatedOn     time.Time `json:"createdOn"     gorm:"column:created_on;not null"`
	LastUpdatedOn time.Time `json:"lastUpdatedOn" gorm:"column:last_updated_on;not null"`

	Account *accounts_models.Account `json:"account,omitempty" gorm:"foreignKey:AccountID"`
	Admin   *users_models.User       `json:"admin,omitempty"   gorm:"foreignKey:AdminID"`
	Teams   []teams_models.Team      `json:"teams"             gorm:"foreignKey:WorkspaceID"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

// UpdateFromDTO applies the mutable fields; name is the only one.
func (w *Workspace) UpdateFromDTO(update *Workspace) {
	w.Name = update.Name
}
