package workspaces_testing

import (
	accounts_models "tofu-workspaces-backend/internal/features/accounts/models"
	accounts_repositories "tofu-workspaces-backend/internal/features/accounts/repositories"
	users_models "tofu-workspaces-backend/internal/features/users/models"
	users_repositories "tofu-workspaces-backend/internal/features/users/repositories"
	workspaces_dto "tofu-workspaces-backend/internal/features/workspaces/dto"
	workspaces_models "tofu-workspaces-backend/internal/features/workspaces/models"
	workspaces_services "tofu-workspaces-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	root := router.Group("")
	for _, controller := range controllers {
		controller.RegisterRoutes(root)
	}

	return router
}

// CreateTestAccount persists a bare account row the way the identity
// provider would have before calling into this service.
func CreateTestAccount() *accounts_models.Account {
	account := &accounts_models.Account{
		ID:       uuid.New(),
		Settings: map[string]string{"plan": "standard"},
	}

	if err := accounts_repositories.GetAccountRepository().CreateAccount(account); err != nil {
		panic(err)
	}

	return account
}

func CreateTestUser(email string) *users_models.User {
	user := &users_models.User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Enabled:   true,
		Activated: true,
	}

	if err := users_repositories.GetUserRepository().CreateUser(user); err != nil {
		panic(err)
	}

	return user
}

// CreateTestWorkspace provisions a workspace through the service so the
// full cascade (teams from the catalog, auto-assigned members) runs.
func CreateTestWorkspace(
	accountID uuid.UUID,
	name string,
	admin *users_models.User,
) *workspaces_models.Workspace {
	workspace, err := workspaces_services.GetWorkspaceService().
		CreateWorkspace(accountID, &workspaces_dto.CreateWorkspaceRequestDTO{
			Name: name,
			Admin: &workspaces_dto.AdminDescriptorDTO{
				ID:    admin.ID,
				Email: admin.Email,
			},
		})
	if err != nil {
		panic(err)
	}

	return workspace
}
