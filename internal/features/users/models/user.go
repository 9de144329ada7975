package users_models

import (
	"time"

	"github.com/google/uuid"
)

// User is a participant drawn from the shared user pool. Users may be
// created inline during workspace provisioning (as the workspace admin)
// or as provisional records linked to an invitation, in which case the
// name fields stay empty until the invitation is consumed.
type User struct {
	ID            uuid.UUID   `json:"id"                  gorm:"column:id;primaryKey;type:uuid"`
	Email         string      `json:"email"               gorm:"column:email;not null;type:varchar(255)"`
	FirstName     string      `json:"firstName"           gorm:"column:first_name;type:varchar(255)"`
	LastName      string      `json:"lastName"            gorm:"column:last_name;type:varchar(255)"`
	Enabled       bool        `json:"enabled"             gorm:"column:enabled;not null;default:true"`
	Activated     bool        `json:"activated"           gorm:"column:activated;not null;default:false"`
	ActivatedOn   *time.Time  `json:"activatedOn"         gorm:"column:activated_on"`
	Mobile        *string     `json:"mobile,omitempty"    gorm:"column:mobile;type:varchar(50)"`
	Avatar        *Attachment `json:"avatar,omitempty"    gorm:"column:avatar;type:jsonb;serializer:json"`
	CreatedOn     time.Time   `json:"createdOn"           gorm:"column:created_on;not null"`
	LastUpdatedOn time.Time   `json:"lastUpdatedOn"       gorm:"column:last_updated_on;not null"`
}

func (User) TableName() string {
	return "users"
}

// IsProvisioned reports whether the user carries enough identity to be
// announced downstream. Invitation-only records missing either name are
// not considered provisioned yet.
func (u *User) IsProvisioned() bool {
	return u.FirstName != "" && u.LastName != ""
}
