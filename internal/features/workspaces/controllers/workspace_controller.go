package workspaces_controllers

import (
	"errors"
	"net/http"

	workspaces_dto "tofu-workspaces-backend/internal/features/workspaces/dto"
	workspaces_services "tofu-workspaces-backend/internal/features/workspaces/services"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceController struct {
	workspaceService *workspaces_services.WorkspaceService
}

func (c *WorkspaceController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/accounts/:account/workspaces", c.CreateWorkspace)
	router.GET("/accounts/:account/workspaces/:workspace", c.GetWorkspace)
	router.PUT("/accounts/:account/workspaces/:workspace", c.UpdateWorkspace)
	router.DELETE("/accounts/:account/workspaces/:workspace", c.DeleteWorkspace)
	router.POST("/search/account/:account/workspaces", c.SearchWorkspaces)
}

// CreateWorkspace
// @Summary Create a new workspace
// @Description Create a workspace under an existing account, materializing the default teams
// @Tags workspaces
// @Accept json
// @Produce json
// @Param account path string true "Account ID"
// @Param request body workspaces_dto.CreateWorkspaceRequestDTO true "Workspace creation data"
// @Success 201 {object} workspaces_models.Workspace
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Router /accounts/{account}/workspaces [post]
func (c *WorkspaceController) CreateWorkspace(ctx *gin.Context) {
	accountID, ok := parseUUIDParam(ctx, "account")
	if !ok {
		return
	}

	var request workspaces_dto.CreateWorkspaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	workspace, err := c.workspaceService.CreateWorkspace(accountID, &request)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, workspace)
}

// GetWorkspace
// @Summary Load a workspace
// @Description Get a workspace scoped to its account; a workspace under another account is not found
// @Tags workspaces
// @Produce json
// @Param account path string true "Account ID"
// @Param workspace path string true "Workspace ID"
// @Success 200 {object} workspaces_models.Workspace
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{account}/workspaces/{workspace} [get]
func (c *WorkspaceController) GetWorkspace(ctx *gin.Context) {
	accountID, ok := parseUUIDParam(ctx, "account")
	if !ok {
		return
	}

	workspaceID, ok := parseUUIDParam(ctx, "workspace")
	if !ok {
		return
	}

	workspace, err := c.workspaceService.GetWorkspace(accountID, workspaceID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// UpdateWorkspace
// @Summary Update a workspace
// @Description Apply the mutable workspace fields (name)
// @Tags workspaces
// @Accept json
// @Produce json
// @Param account path string true "Account ID"
// @Param workspace path string true "Workspace ID"
// @Param request body workspaces_dto.UpdateWorkspaceRequestDTO true "Workspace update data"
// @Success 202 {object} workspaces_models.Workspace
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{account}/workspaces/{workspace} [put]
func (c *WorkspaceController) UpdateWorkspace(ctx *gin.Context) {
	accountID, ok := parseUUIDParam(ctx, "account")
	if !ok {
		return
	}

	workspaceID, ok := parseUUIDParam(ctx, "workspace")
	if !ok {
		return
	}

	var request workspaces_dto.UpdateWorkspaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	workspace, err := c.workspaceService.UpdateWorkspace(accountID, workspaceID, &request)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, workspace)
}

// DeleteWorkspace
// @Summary Remove a workspace
// @Description Hard-delete a workspace and everything it owns
// @Tags workspaces
// @Param account path string true "Account ID"
// @Param workspace path string true "Workspace ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{account}/workspaces/{workspace} [delete]
func (c *WorkspaceController) DeleteWorkspace(ctx *gin.Context) {
	accountID, ok := parseUUIDParam(ctx, "account")
	if !ok {
		return
	}

	workspaceID, ok := parseUUIDParam(ctx, "workspace")
	if !ok {
		return
	}

	if err := c.workspaceService.RemoveWorkspace(accountID, workspaceID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SearchWorkspaces
// @Summary Search workspaces under an account
// @Description List an account's workspaces matching the filter; the listing is unbounded
// @Tags workspaces
// @Accept json
// @Produce json
// @Param account path string true "Account ID"
// @Param request body workspaces_dto.SearchWorkspacesRequestDTO true "Search filter"
// @Success 200 {array} workspaces_models.Workspace
// @Failure 400 {object} map[string]string
// @Router /search/account/{account}/workspaces [post]
func (c *WorkspaceController) SearchWorkspaces(ctx *gin.Context) {
	accountID, ok := parseUUIDParam(ctx, "account")
	if !ok {
		return
	}

	request := workspaces_dto.SearchWorkspacesRequestDTO{}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	workspaces, err := c.workspaceService.SearchWorkspaces(accountID, &request)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, workspaces)
}

func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	value, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " ID"})
		return uuid.Nil, false
	}

	return value, true
}

func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrPreconditionFailed):
		ctx.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
