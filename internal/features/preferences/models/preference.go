package preferences_models

import (
	"time"

	"github.com/google/uuid"
)

// Preference is a catalog entry describing a configurable setting some
// application exposes to users. Values chosen by individual users live
// in Profile rows.
type Preference struct {
	ID            uuid.UUID `json:"id"                    gorm:"column:id;primaryKey;type:uuid"`
	Application   string    `json:"application"           gorm:"column:application;not null;type:varchar(255)"`
	Code          string    `json:"code"                  gorm:"column:code;not null;type:varchar(255)"`
	DefaultValue  string    `json:"defaultValue"          gorm:"column:default_value;not null;type:varchar(255)"`
	Description   *string   `json:"description,omitempty" gorm:"column:description;type:text"`
	IsAssignable  bool      `json:"isAssignable"          gorm:"column:is_assignable;not null;default:false"`
	CreatedOn     time.Time `json:"createdOn"             gorm:"column:created_on;not null"`
	LastUpdatedOn time.Time `json:"lastUpdatedOn"         gorm:"column:last_updated_on;not null"`
}

func (Preference) TableName() string {
	return "preferences"
}
