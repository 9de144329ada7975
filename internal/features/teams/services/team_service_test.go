package teams_services

import (
	"errors"
	"testing"

	"tofu-workspaces-backend/internal/features/events"
	teams_dto "tofu-workspaces-backend/internal/features/teams/dto"
	workspaces_testing "tofu-workspaces-backend/internal/features/workspaces/testing"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TeamLifecycle_EmitsDomainEvents(t *testing.T) {
	recorder := &events.Recorder{}
	events.GetEventService().SetPublisher(recorder)
	defer events.GetEventService().SetPublisher(&events.Recorder{})

	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")
	workspace := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Events "+uuid.New().String()[:8],
		admin,
	)

	team, err := GetTeamService().CreateTeam(account.ID, workspace.ID,
		&teams_dto.CreateTeamRequestDTO{
			Code: "EVT-" + uuid.New().String()[:8],
			Name: "Event Emitters",
		})
	require.NoError(t, err)

	_, err = GetTeamService().AssignMembers(account.ID, workspace.ID, team.ID,
		&teams_dto.AssignTeamRequestDTO{
			Members: []teams_dto.MemberAssignDTO{{ID: admin.ID}},
		})
	require.NoError(t, err)

	require.NoError(t, GetTeamService().RemoveTeam(account.ID, workspace.ID, team.ID))

	var keys []string
	for _, e := range recorder.Events() {
		if e.Exchange == "core.workspaces" {
			keys = append(keys, e.RoutingKey)
		}
	}

	assert.Contains(t, keys, "core.workspaces.team.created")
	assert.Contains(t, keys, "core.workspaces.team.reassigned")
	assert.Contains(t, keys, "core.workspaces.team.removed")
}

func Test_RemoveTeam_PublishFailureDoesNotFailTheCall(t *testing.T) {
	recorder := &events.Recorder{FailWith: errors.New("broker unavailable")}
	events.GetEventService().SetPublisher(recorder)
	defer events.GetEventService().SetPublisher(&events.Recorder{})

	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")
	workspace := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Sink Down "+uuid.New().String()[:8],
		admin,
	)

	team, err := GetTeamService().CreateTeam(account.ID, workspace.ID,
		&teams_dto.CreateTeamRequestDTO{
			Code: "SINK-" + uuid.New().String()[:8],
			Name: "Sink Down",
		})
	require.NoError(t, err)

	assert.NoError(t, GetTeamService().RemoveTeam(account.ID, workspace.ID, team.ID))
}

func Test_GetTeam_FromAnotherWorkspace_ReturnsNotFound(t *testing.T) {
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")
	first := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"First "+uuid.New().String()[:8],
		admin,
	)
	second := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Second "+uuid.New().String()[:8],
		admin,
	)

	team, err := GetTeamService().CreateTeam(account.ID, first.ID,
		&teams_dto.CreateTeamRequestDTO{
			Code: "SCOPED-" + uuid.New().String()[:8],
			Name: "Scoped",
		})
	require.NoError(t, err)

	_, err = GetTeamService().GetTeam(account.ID, second.ID, team.ID)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func Test_AssignMembers_IsIdempotentForTheSameSet(t *testing.T) {
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")
	workspace := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Idempotent "+uuid.New().String()[:8],
		admin,
	)

	user := workspaces_testing.CreateTestUser("member-" + uuid.New().String()[:8] + "@example.com")

	team, err := GetTeamService().CreateTeam(account.ID, workspace.ID,
		&teams_dto.CreateTeamRequestDTO{
			Code: "IDEM-" + uuid.New().String()[:8],
			Name: "Idempotent",
		})
	require.NoError(t, err)

	request := &teams_dto.AssignTeamRequestDTO{
		Members: []teams_dto.MemberAssignDTO{{ID: user.ID}},
	}

	first, err := GetTeamService().AssignMembers(account.ID, workspace.ID, team.ID, request)
	require.NoError(t, err)
	require.Len(t, first.Members, 1)

	second, err := GetTeamService().AssignMembers(account.ID, workspace.ID, team.ID, request)
	require.NoError(t, err)
	require.Len(t, second.Members, 1)

	// The kept member row survives reassignment untouched.
	assert.Equal(t, first.Members[0].ID, second.Members[0].ID)
}
