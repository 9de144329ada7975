package teams_testing

import (
	teams_models "tofu-workspaces-backend/internal/features/teams/models"
	teams_repositories "tofu-workspaces-backend/internal/features/teams/repositories"
)

// CreateTestSystemTeam adds a catalog entry for one test. Callers must
// remove it afterwards so the shared catalog stays at its seeded state.
func CreateTestSystemTeam(code string, name string, autoAssign bool) *teams_models.SystemTeam {
	entry := &teams_models.SystemTeam{
		Code:       code,
		Name:       name,
		AutoAssign: autoAssign,
	}

	if err := teams_repositories.GetSystemTeamRepository().CreateSystemTeam(entry); err != nil {
		panic(err)
	}

	return entry
}

func RemoveTestSystemTeam(code string) {
	if err := teams_repositories.GetSystemTeamRepository().DeleteByCode(code); err != nil {
		panic(err)
	}
}

// CatalogSize reports how many entries the provisioning cascade will
// materialize for a fresh workspace.
func CatalogSize() int {
	catalog, err := teams_repositories.GetSystemTeamRepository().GetCatalog()
	if err != nil {
		panic(err)
	}

	return len(catalog)
}
