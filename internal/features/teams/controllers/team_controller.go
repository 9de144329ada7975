package teams_controllers

import (
	"errors"
	"net/http"

	teams_dto "tofu-workspaces-backend/internal/features/teams/dto"
	teams_services "tofu-workspaces-backend/internal/features/teams/services"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamController struct {
	teamService *teams_services.TeamService
}

func (c *TeamController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/accounts/:account/workspaces/:workspace/teams", c.CreateTeam)
	router.GET("/accounts/:account/workspaces/:workspace/teams", c.SearchTeams)
	router.PUT("/accounts/:account/workspaces/:workspace/teams/:team", c.UpdateTeam)
	router.PUT("/accounts/:account/workspaces/:workspace/teams/:team/members", c.AssignMembers)
	router.DELETE("/accounts/:account/workspaces/:workspace/teams/:team", c.DeleteTeam)
}

// CreateTeam
// @Summary Create a team
// @Description Create a custom team inside a workspace, optionally with an initial member list
// @Tags teams
// @Accept json
// @Produce json
// @Param account path string true "Account ID"
// @Param workspace path string true "Workspace ID"
// @Param request body teams_dto.CreateTeamRequestDTO true "Team creation data"
// @Success 201 {object} teams_models.Team
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Router /accounts/{account}/workspaces/{workspace}/teams [post]
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	accountID, workspaceID, ok := parseScopeParams(ctx)
	if !ok {
		return
	}

	var request teams_dto.CreateTeamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	team, err := c.teamService.CreateTeam(accountID, workspaceID, &request)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, team)
}

// SearchTeams
// @Summary List the teams of a workspace
// @Tags teams
// @Produce json
// @Param account path string true "Account ID"
// @Param workspace path string true "Workspace ID"
// @Success 200 {array} teams_models.Team
// @Failure 400 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Router /accounts/{account}/workspaces/{workspace}/teams [get]
func (c *TeamController) SearchTeams(ctx *gin.Context) {
	accountID, workspaceID, ok := parseScopeParams(ctx)
	if !ok {
		return
	}

	teams, err := c.teamService.SearchTeams(accountID, workspaceID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// UpdateTeam
// @Summary Update a team
// @Description Apply the mutable team fields (name); the code is immutable
// @Tags teams
// @Accept json
// @Produce json
// @Param account path string true "Account ID"
// @Param workspace path string true "Workspace ID"
// @Param team path string true "Team ID"
// @Param request body teams_dto.UpdateTeamRequestDTO true "Team update data"
// @Success 202 {object} teams_models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{account}/workspaces/{workspace}/teams/{team} [put]
func (c *TeamController) UpdateTeam(ctx *gin.Context) {
	accountID, workspaceID, ok := parseScopeParams(ctx)
	if !ok {
		return
	}

	teamID, ok := parseUUIDParam(ctx, "team")
	if !ok {
		return
	}

	var request teams_dto.UpdateTeamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	team, err := c.teamService.UpdateTeam(accountID, workspaceID, teamID, &request)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, team)
}

// AssignMembers
// @Summary Replace the member list of a team
// @Description Reconcile the team membership to exactly the given set of users; an empty list clears the team
// @Tags teams
// @Accept json
// @Produce json
// @Param account path string true "Account ID"
// @Param workspace path string true "Workspace ID"
// @Param team path string true "Team ID"
// @Param request body teams_dto.AssignTeamRequestDTO true "Desired member set"
// @Success 202 {object} teams_models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Router /accounts/{account}/workspaces/{workspace}/teams/{team}/members [put]
func (c *TeamController) AssignMembers(ctx *gin.Context) {
	accountID, workspaceID, ok := parseScopeParams(ctx)
	if !ok {
		return
	}

	teamID, ok := parseUUIDParam(ctx, "team")
	if !ok {
		return
	}

	var request teams_dto.AssignTeamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	team, err := c.teamService.AssignMembers(accountID, workspaceID, teamID, &request)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, team)
}

// DeleteTeam
// @Summary Remove a team
// @Description Hard-delete a team and its memberships
// @Tags teams
// @Param account path string true "Account ID"
// @Param workspace path string true "Workspace ID"
// @Param team path string true "Team ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{account}/workspaces/{workspace}/teams/{team} [delete]
func (c *TeamController) DeleteTeam(ctx *gin.Context) {
	accountID, workspaceID, ok := parseScopeParams(ctx)
	if !ok {
		return
	}

	teamID, ok := parseUUIDParam(ctx, "team")
	if !ok {
		return
	}

	if err := c.teamService.RemoveTeam(accountID, workspaceID, teamID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseScopeParams(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	accountID, ok := parseUUIDParam(ctx, "account")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	workspaceID, ok := parseUUIDParam(ctx, "workspace")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	return accountID, workspaceID, true
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
