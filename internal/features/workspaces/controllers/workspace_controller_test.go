package workspaces_controllers

import (
	"net/http"
	"testing"

	teams_models "tofu-workspaces-backend/internal/features/teams/models"
	teams_testing "tofu-workspaces-backend/internal/features/teams/testing"
	workspaces_dto "tofu-workspaces-backend/internal/features/workspaces/dto"
	workspaces_models "tofu-workspaces-backend/internal/features/workspaces/models"
	workspaces_testing "tofu-workspaces-backend/internal/features/workspaces/testing"
	test_utils "tofu-workspaces-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateWorkspace_MaterializesCatalogTeams(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")

	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: "Engineering " + uuid.New().String()[:8],
		Admin: &workspaces_dto.AdminDescriptorDTO{
			ID:    admin.ID,
			Email: admin.Email,
		},
	}

	var response workspaces_models.Workspace
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Equal(t, account.ID, response.AccountID)
	assert.Equal(t, admin.ID, response.AdminID)
	assert.True(t, response.Enabled)
	assert.Len(t, response.Teams, teams_testing.CatalogSize())

	var adminTeam *teams_models.Team
	for i := range response.Teams {
		if response.Teams[i].Code == "ADMINISTRATORS" {
			adminTeam = &response.Teams[i]
		}
	}

	require.NotNil(t, adminTeam, "seeded ADMINISTRATORS team must be materialized")
	require.Len(t, adminTeam.Members, 1)
	assert.Equal(t, admin.ID, adminTeam.Members[0].UserID)
	assert.Equal(t, teams_models.DefaultMemberRole, adminTeam.Members[0].Role)
}

func Test_CreateWorkspace_CatalogEntryWithoutAutoAssign_MaterializesEmptyTeam(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")

	entry := teams_testing.CreateTestSystemTeam(
		"OBSERVERS-"+uuid.New().String()[:8],
		"Observers",
		false,
	)
	defer teams_testing.RemoveTestSystemTeam(entry.Code)

	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: "Observed " + uuid.New().String()[:8],
		Admin: &workspaces_dto.AdminDescriptorDTO{
			ID:    admin.ID,
			Email: admin.Email,
		},
	}

	var response workspaces_models.Workspace
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	assert.Len(t, response.Teams, teams_testing.CatalogSize())

	var observers, administrators *teams_models.Team
	for i := range response.Teams {
		switch response.Teams[i].Code {
		case entry.Code:
			observers = &response.Teams[i]
		case "ADMINISTRATORS":
			administrators = &response.Teams[i]
		}
	}

	// Every catalog entry becomes a team with its code and name copied;
	// only auto-assign entries get the admin as a member.
	require.NotNil(t, observers)
	assert.Equal(t, entry.Name, observers.Name)
	assert.Empty(t, observers.Members)

	require.NotNil(t, administrators)
	assert.Len(t, administrators.Members, 1)
}

func Test_CreateWorkspace_DuplicateName_ReturnsConflict(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")

	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: "Operations " + uuid.New().String()[:8],
		Admin: &workspaces_dto.AdminDescriptorDTO{
			ID:    admin.ID,
			Email: admin.Email,
		},
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces",
		"",
		request,
		http.StatusCreated,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces",
		"",
		request,
		http.StatusConflict,
	)

	// The rejected attempt must leave no partial state behind.
	var matches []workspaces_models.Workspace
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/search/account/"+account.ID.String()+"/workspaces",
		"",
		workspaces_dto.SearchWorkspacesRequestDTO{Name: &request.Name},
		http.StatusOK,
		&matches,
	)
	assert.Len(t, matches, 1)
}

func Test_CreateWorkspace_NewAdminWithExistingEmail_Succeeds(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()

	email := "shared-" + uuid.New().String()[:8] + "@example.com"
	existing := workspaces_testing.CreateTestUser(email)

	// Email is not an identity: a fresh admin may reuse an address
	// already held by another user.
	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: "Shared Email " + uuid.New().String()[:8],
		Admin: &workspaces_dto.AdminDescriptorDTO{
			ID:    uuid.New(),
			Email: email,
		},
	}

	var response workspaces_models.Workspace
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, request.Admin.ID, response.AdminID)
	assert.NotEqual(t, existing.ID, response.AdminID)
}

func Test_CreateWorkspace_UnknownAccount_ReturnsPreconditionFailed(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")

	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: "Ghost " + uuid.New().String()[:8],
		Admin: &workspaces_dto.AdminDescriptorDTO{
			ID:    admin.ID,
			Email: admin.Email,
		},
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/accounts/"+uuid.New().String()+"/workspaces",
		"",
		request,
		http.StatusPreconditionFailed,
	)
}

func Test_CreateWorkspace_NewAdminWithoutEmail_ReturnsPreconditionFailed(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()

	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: "No Email " + uuid.New().String()[:8],
		Admin: &workspaces_dto.AdminDescriptorDTO{
			ID: uuid.New(),
		},
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces",
		"",
		request,
		http.StatusPreconditionFailed,
	)
	assert.Contains(t, string(resp.Body), "email")
}

func Test_CreateWorkspace_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/accounts/" + account.ID.String() + "/workspaces",
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_CreateWorkspace_WithMalformedAccountID_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())

	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: "Whatever",
		Admin: &workspaces_dto.AdminDescriptorDTO{
			ID: uuid.New(),
		},
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/accounts/not-a-uuid/workspaces",
		"",
		request,
		http.StatusBadRequest,
	)
}

func Test_GetWorkspace_IsScopedToAccount(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()
	otherAccount := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")

	workspace := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Scoped "+uuid.New().String()[:8],
		admin,
	)

	var response workspaces_models.Workspace
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces/"+workspace.ID.String(),
		"",
		http.StatusOK,
		&response,
	)
	assert.Equal(t, workspace.ID, response.ID)
	assert.Equal(t, workspace.Name, response.Name)

	// The same workspace is invisible through another account.
	test_utils.MakeGetRequest(
		t,
		router,
		"/accounts/"+otherAccount.ID.String()+"/workspaces/"+workspace.ID.String(),
		"",
		http.StatusNotFound,
	)
}

func Test_UpdateWorkspace_RenamePersists(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")

	workspace := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Before "+uuid.New().String()[:8],
		admin,
	)

	newName := "After " + uuid.New().String()[:8]
	var updated workspaces_models.Workspace
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces/"+workspace.ID.String(),
		"",
		workspaces_dto.UpdateWorkspaceRequestDTO{Name: newName},
		http.StatusAccepted,
		&updated,
	)
	assert.Equal(t, newName, updated.Name)

	var reloaded workspaces_models.Workspace
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces/"+workspace.ID.String(),
		"",
		http.StatusOK,
		&reloaded,
	)
	assert.Equal(t, newName, reloaded.Name)
}

func Test_DeleteWorkspace_RemovesEverything(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")

	workspace := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Doomed "+uuid.New().String()[:8],
		admin,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces/"+workspace.ID.String(),
		"",
		http.StatusNoContent,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces/"+workspace.ID.String(),
		"",
		http.StatusNotFound,
	)

	// Removal is not idempotent: a second delete reports not found.
	test_utils.MakeDeleteRequest(
		t,
		router,
		"/accounts/"+account.ID.String()+"/workspaces/"+workspace.ID.String(),
		"",
		http.StatusNotFound,
	)
}

func Test_SearchWorkspaces_FiltersByName(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	account := workspaces_testing.CreateTestAccount()
	admin := workspaces_testing.CreateTestUser("admin-" + uuid.New().String()[:8] + "@example.com")

	first := workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Alpha "+uuid.New().String()[:8],
		admin,
	)
	workspaces_testing.CreateTestWorkspace(
		account.ID,
		"Beta "+uuid.New().String()[:8],
		admin,
	)

	var all []workspaces_models.Workspace
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/search/account/"+account.ID.String()+"/workspaces",
		"",
		workspaces_dto.SearchWorkspacesRequestDTO{},
		http.StatusOK,
		&all,
	)
	assert.Len(t, all, 2)

	var filtered []workspaces_models.Workspace
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/search/account/"+account.ID.String()+"/workspaces",
		"",
		workspaces_dto.SearchWorkspacesRequestDTO{Name: &first.Name},
		http.StatusOK,
		&filtered,
	)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].ID)
}
