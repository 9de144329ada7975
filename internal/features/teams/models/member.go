package teams_models

import (
	"time"

	users_models "tofu-workspaces-backend/internal/features/users/models"

	"github.com/google/uuid"
)

// DefaultMemberRole is assigned when membership is created without an
// explicit role, including auto-assigned members during provisioning.
const DefaultMemberRole = "MEMBER"

// Member joins a user into a team. Members are never mutated in place;
// membership changes replace the whole set.
type Member struct {
	ID            int64     `json:"id"            gorm:"column:id;primaryKey;autoIncrement"`
	TeamID        uuid.UUID `json:"teamId"        gorm:"column:team_id;not null;type:uuid;index;uniqueIndex:idx_members_team_user"`
	UserID        uuid.UUID `json:"userId"        gorm:"column:user_id;not null;type:uuid;uniqueIndex:idx_members_team_user"`
	Role          string    `json:"role"          gorm:"column:role;not null;type:varchar(100)"`
	Enabled       bool      `json:"enabled"       gorm:"column:enabled;not null;default:true"`
	CreatedOn     time.Time `json:"createdOn"     gorm:"column:created_on;not null"`
	LastUpdatedOn time.Time `json:"lastUpdatedOn" gorm:"column:last_updated_on;not null"`

	User *users_models.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Member) TableName() string {
	return "members"
}
