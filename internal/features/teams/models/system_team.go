package teams_models

import "time"

// SystemTeam is a global catalog entry describing a default team that
// every new workspace receives. The catalog is seeded by migration and
// read-only at provisioning time.
type SystemTeam struct {
	ID         int64     `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	Code       string    `json:"code"       gorm:"column:code;not null;type:varchar(255)"`
	Name       string    `json:"name"       gorm:"column:name;not null;type:varchar(255)"`
	AutoAssign bool      `json:"autoAssign" gorm:"column:auto_assign;not null;default:false"`
	CreatedOn  time.Time `json:"createdOn"  gorm:"column:created_on;not null"`
}

func (SystemTeam) TableName() string {
	return "system_teams"
}
