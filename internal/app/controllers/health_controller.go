package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/idscan/internal/app/models/dto"
	"github.com/yigit/idscan/internal/app/services"
)

// HealthResponse reports service status
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Storage string `json:"storage" example:"file"`
	Records int    `json:"records" example:"3"`
}

// HealthController answers liveness probes
type HealthController struct {
	store  *services.StudentStore
	driver string
}

// NewHealthController creates a new HealthController
func NewHealthController(store *services.StudentStore, driver string) *HealthController {
	return &HealthController{store: store, driver: driver}
}

// Health reports the storage driver and record count
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=HealthResponse}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(HealthResponse{
		Status:  "ok",
		Storage: c.driver,
		Records: c.store.Count(),
	}, ""))
}
