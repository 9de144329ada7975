package workspaces_services_test

import (
	"errors"
	"testing"

	"tofu-workspaces-backend/internal/features/events"
	workspaces_dto "tofu-workspaces-backend/internal/features/workspaces/dto"
	workspaces_services "tofu-workspaces-backend/internal/features/workspaces/services"
	workspaces_testing "tofu-workspaces-backend/internal/features/workspaces/testing"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateWorkspace_WithNewAdmin_EmitsUserProvisioned(t *testing.T) {
	recorder := &events.Recorder{}
	events.GetEventService().SetPublisher(recorder)
	defer events.GetEventService().SetPublisher(&events.Recorder{})

	account := workspaces_testing.CreateTestAccount()
	adminID := uuid.New()

	workspace, err := workspaces_services.GetWorkspaceService().
		CreateWorkspace(account.ID, &workspaces_dto.CreateWorkspaceRequestDTO{
			Name: "Provisioning " + uuid.New().String()[:8],
			Admin: &workspaces_dto.AdminDescriptorDTO{
				ID:        adminID,
				Email:     "fresh-" + uuid.New().String()[:8] + "@example.com",
				FirstName: "Fresh",
				LastName:  "Admin",
			},
		})
	require.NoError(t, err)
	require.NotNil(t, workspace.Admin)
	assert.Equal(t, adminID, workspace.Admin.ID)

	var provisioned []events.RecordedEvent
	for _, e := range recorder.Events() {
		if e.RoutingKey == "core.users.user.provisioned" {
			provisioned = append(provisioned, e)
		}
	}
	require.Len(t, provisioned, 1)
	assert.Equal(t, "core.users", provisioned[0].Exchange)
}

func Test_CreateWorkspace_WithExistingAdmin_EmitsNothing(t *testing.T) {
	recorder := &events.Recorder{}
	events.GetEventService().SetPublisher(recorder)
	defer events.GetEventService().SetPublisher(&events.Recorder{})

	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("known-" + uuid.New().String()[:8] + "@example.com")

	_, err := workspaces_services.GetWorkspaceService().
		CreateWorkspace(account.ID, &workspaces_dto.CreateWorkspaceRequestDTO{
			Name: "Known Admin " + uuid.New().String()[:8],
			Admin: &workspaces_dto.AdminDescriptorDTO{
				ID:    admin.ID,
				Email: admin.Email,
			},
		})
	require.NoError(t, err)

	for _, e := range recorder.Events() {
		assert.NotEqual(t, "core.users.user.provisioned", e.RoutingKey)
	}
}

func Test_CreateWorkspace_PublishFailureDoesNotFailTheCall(t *testing.T) {
	recorder := &events.Recorder{FailWith: errors.New("broker unavailable")}
	events.GetEventService().SetPublisher(recorder)
	defer events.GetEventService().SetPublisher(&events.Recorder{})

	account := workspaces_testing.CreateTestAccount()

	workspace, err := workspaces_services.GetWorkspaceService().
		CreateWorkspace(account.ID, &workspaces_dto.CreateWorkspaceRequestDTO{
			Name: "Sink Down " + uuid.New().String()[:8],
			Admin: &workspaces_dto.AdminDescriptorDTO{
				ID:        uuid.New(),
				Email:     "sink-" + uuid.New().String()[:8] + "@example.com",
				FirstName: "Sink",
				LastName:  "Down",
			},
		})
	require.NoError(t, err)
	assert.NotNil(t, workspace)
}

func Test_RemoveWorkspace_Twice_ReturnsNotFound(t *testing.T) {
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")
	workspace := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Short Lived "+uuid.New().String()[:8],
		admin,
	)

	require.NoError(t, workspaces_services.GetWorkspaceService().RemoveWorkspace(account.ID, workspace.ID))

	err := workspaces_services.GetWorkspaceService().RemoveWorkspace(account.ID, workspace.ID)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func Test_CreateWorkspace_DisabledWorkspaceFreesItsName(t *testing.T) {
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")
	name := "Recyclable " + uuid.New().String()[:8]

	first := workspaces_testing.CreateTestWorkspace(account.ID, name, admin)
	require.NoError(t, workspaces_services.GetWorkspaceService().RemoveWorkspace(account.ID, first.ID))

	// After the first workspace is gone its name is available again.
	second, err := workspaces_services.GetWorkspaceService().
		CreateWorkspace(account.ID, &workspaces_dto.CreateWorkspaceRequestDTO{
			Name: name,
			Admin: &workspaces_dto.AdminDescriptorDTO{
				ID:    admin.ID,
				Email: admin.Email,
			},
		})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
