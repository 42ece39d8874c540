package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolportal/internal/app/models/dto"
)

// HealthController answers liveness probes
type HealthController struct {
	storeDriver string
}

// NewHealthController creates a new HealthController
func NewHealthController(storeDriver string) *HealthController {
	return &HealthController{storeDriver: storeDriver}
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status: "ok",
		Store:  c.storeDriver,
	}))
}
