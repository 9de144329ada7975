package teams_models

import (
	"time"

	"github.com/google/uuid"
)

// Team is a per-workspace group of members, either materialized from
// the system team catalog at provisioning time or registered explicitly.
type Team struct {
	ID            uuid.UUID `json:"id"            gorm:"column:id;primaryKey;type:uuid"`
	WorkspaceID   uuid.UUID `json:"workspaceId"   gorm:"column:workspace_id;not null;type:uuid;index;uniqueIndex:idx_teams_workspace_code"`
	Code          string    `json:"code"          gorm:"column:code;not null;type:varchar(255);uniqueIndex:idx_teams_workspace_code"`
	Name          string    `json:"name"          gorm:"column:name;not null;type:varchar(255)"`
	CreatedOn     time.Time `json:"createdOn"     gorm:"column:created_on;not null"`
	LastUpdatedOn time.Time `json:"lastUpdatedOn" gorm:"column:last_updated_on;not null"`

	Members []Member `json:"members" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}

// UpdateFromDTO applies the mutable fields. Only the display name may
// change after creation; the code is fixed for the team's lifetime.
func (t *Team) UpdateFromDTO(update *Team) {
	t.Name = update.Name
}
