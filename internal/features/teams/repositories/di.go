package teams_repositories

var teamRepository = &TeamRepository{}
var systemTeamRepository = &SystemTeamRepository{}

func GetTeamRepository() *TeamRepository {
	return teamRepository
}

func GetSystemTeamRepository() *SystemTeamRepository {
	return systemTeamRepository
}
