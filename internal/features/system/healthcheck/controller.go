package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct{}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.Healthcheck)
}

// Healthcheck
// @Summary Service liveness probe
// @Tags system
// @Produce plain
// @Success 200 {string} string "TOFU Workspace Core is up"
// @Router / [get]
func (c *HealthcheckController) Healthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, "TOFU Workspace Core is up")
}
