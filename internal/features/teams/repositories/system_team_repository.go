package teams_repositories

import (
	"time"

	teams_models "tofu-workspaces-backend/internal/features/teams/models"
	"tofu-workspaces-backend/internal/storage"
)

// SystemTeamRepository reads the global default-team catalog. The
// catalog is seeded by migration; tenant operations never write it.
type SystemTeamRepository struct{}

// GetCatalog returns all catalog entries ordered by primary key, so
// team materialization order is stable.
func (r *SystemTeamRepository) GetCatalog() ([]teams_models.SystemTeam, error) {
	var catalog []teams_models.SystemTeam

	err := storage.GetDb().Order("id ASC").Find(&catalog).Error

	return catalog, err
}

// CreateSystemTeam exists for test fixtures; production rows come from
// migrations.
func (r *SystemTeamRepository) CreateSystemTeam(entry *teams_models.SystemTeam) error {
	if entry.CreatedOn.IsZero() {
		entry.CreatedOn = time.Now().UTC()
	}

	return storage.GetDb().Create(entry).Error
}

func (r *SystemTeamRepository) DeleteByCode(code string) error {
	return storage.GetDb().
		Where("code = ?", code).
		Delete(&teams_models.SystemTeam{}).Error
}
