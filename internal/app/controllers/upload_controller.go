package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/idscan/internal/app/models/dto"
	"github.com/yigit/idscan/internal/app/services"
	"github.com/yigit/idscan/internal/middleware"
)

// UploadController triggers the batch upload
type UploadController struct {
	uploads *services.UploadService
}

// NewUploadController creates a new UploadController
func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{uploads: uploads}
}

// Upload sends every record to the remote API
// @Summary Upload the list
// @Description Posts each record to the remote API independently and waits for all of them. Uploaded records leave the list; failed ones stay for a manual retry. When nothing succeeds the list is unchanged.
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UploadResponse} "Batch finished"
// @Failure 409 {object} dto.ErrorResponse "Another upload is running"
// @Failure 502 {object} dto.ErrorResponse "Upload could not run"
// @Router /students/upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	result, err := c.uploads.UploadAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := services.UploadMessage(result)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: result.SuccessCount > 0 || result.Remaining() == 0,
		Message: message,
		Data: dto.UploadResponse{
			Uploaded:  result.SuccessCount,
			Remaining: result.Remaining(),
			Message:   message,
		},
		Timestamp: time.Now(),
	})
}
