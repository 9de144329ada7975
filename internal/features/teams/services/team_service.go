package teams_services

import (
	"fmt"

	"tofu-workspaces-backend/internal/features/events"
	teams_dto "tofu-workspaces-backend/internal/features/teams/dto"
	teams_models "tofu-workspaces-backend/internal/features/teams/models"
	teams_repositories "tofu-workspaces-backend/internal/features/teams/repositories"
	users_repositories "tofu-workspaces-backend/internal/features/users/repositories"
	workspaces_repositories "tofu-workspaces-backend/internal/features/workspaces/repositories"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/google/uuid"
)

type TeamService struct {
	teamRepository      *teams_repositories.TeamRepository
	userRepository      *users_repositories.UserRepository
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	eventService        *events.EventService
}

// CreateTeam registers a team under a scoped workspace. Every member
// referenced by the request must resolve to an existing user before
// anything is written.
func (s *TeamService) CreateTeam(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
	request *teams_dto.CreateTeamRequestDTO,
) (*teams_models.Team, error) {
	if err := s.requireWorkspace(accountID, workspaceID); err != nil {
		return nil, err
	}

	members := make([]teams_models.Member, 0, len(request.Members))
	for _, m := range request.Members {
		user, err := s.userRepository.GetUserByID(m.User)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve member user: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("member user %s does not exist: %w",
				m.User, errs.ErrPreconditionFailed)
		}

		members = append(members, teams_models.Member{UserID: user.ID})
	}

	team := &teams_models.Team{
		WorkspaceID: workspaceID,
		Code:        request.Code,
		Name:        request.Name,
		Members:     members,
	}

	created, err := s.teamRepository.CreateTeam(team)
	if err != nil {
		return nil, err
	}

	s.eventService.TeamCreated(created)

	return created, nil
}

func (s *TeamService) GetTeam(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
	teamID uuid.UUID,
) (*teams_models.Team, error) {
	if err := s.requireWorkspace(accountID, workspaceID); err != nil {
		return nil, err
	}

	team, err := s.teamRepository.GetTeamScoped(workspaceID, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team == nil {
		return nil, errs.ErrNotFound
	}

	return team, nil
}

func (s *TeamService) SearchTeams(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
) ([]*teams_models.Team, error) {
	if err := s.requireWorkspace(accountID, workspaceID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepository.GetTeamsByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) UpdateTeam(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
	teamID uuid.UUID,
	request *teams_dto.UpdateTeamRequestDTO,
) (*teams_models.Team, error) {
	team, err := s.GetTeam(accountID, workspaceID, teamID)
	if err != nil {
		return nil, err
	}

	team.UpdateFromDTO(&teams_models.Team{Name: request.Name})

	if err := s.teamRepository.UpdateTeam(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.GetTeam(accountID, workspaceID, teamID)
}

func (s *TeamService) RemoveTeam(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
	teamID uuid.UUID,
) error {
	team, err := s.GetTeam(accountID, workspaceID, teamID)
	if err != nil {
		return err
	}

	if err := s.teamRepository.DeleteTeam(team.ID); err != nil {
		return fmt.Errorf("failed to remove team: %w", err)
	}

	s.eventService.TeamRemoved(team)

	return nil
}

// AssignMembers replaces the team's membership with the complete
// desired set. Users in the desired set but not on the team are added,
// current members absent from it are dropped, the rest are kept.
func (s *TeamService) AssignMembers(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
	teamID uuid.UUID,
	request *teams_dto.AssignTeamRequestDTO,
) (*teams_models.Team, error) {
	team, err := s.GetTeam(accountID, workspaceID, teamID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(request.Members))
	for _, m := range request.Members {
		user, err := s.userRepository.GetUserByID(m.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve member user: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("member user %s does not exist: %w",
				m.ID, errs.ErrPreconditionFailed)
		}

		userIDs = append(userIDs, user.ID)
	}

	if err := s.teamRepository.ReplaceMembers(team.ID, userIDs); err != nil {
		return nil, fmt.Errorf("failed to reassign team: %w", err)
	}

	reassigned, err := s.GetTeam(accountID, workspaceID, teamID)
	if err != nil {
		return nil, err
	}

	s.eventService.TeamReassigned(reassigned)

	return reassigned, nil
}

func (s *TeamService) requireWorkspace(
	accountID uuid.UUID,
	workspaceID uuid.UUID,
) error {
	workspace, err := s.workspaceRepository.GetWorkspaceScoped(accountID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}
	if workspace == nil {
		return fmt.Errorf("workspace %s does not exist under account: %w",
			workspaceID, errs.ErrPreconditionFailed)
	}

	return nil
}
