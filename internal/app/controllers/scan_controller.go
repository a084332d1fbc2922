package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/app/models/dto"
	"github.com/yigit/idscan/internal/app/services"
	"github.com/yigit/idscan/internal/middleware"
)

// ScanController receives capture events from the scanner
type ScanController struct {
	scans *services.ScanService
}

// NewScanController creates a new ScanController
func NewScanController(scans *services.ScanService) *ScanController {
	return &ScanController{scans: scans}
}

// Scan reconciles a structured capture event
// @Summary Submit a scan
// @Description Inserts a new student, merges a corrected name into the record holding the same number, or rejects an exact duplicate.
// @Tags scans
// @Accept json
// @Produce json
// @Param request body dto.ScanRequest true "Detected ID data"
// @Success 201 {object} dto.APIResponse{data=dto.ScanResponse} "Student inserted"
// @Success 200 {object} dto.APIResponse{data=dto.ScanResponse} "Existing student merged"
// @Failure 400 {object} dto.ErrorResponse "Name or student number missing"
// @Failure 409 {object} dto.ErrorResponse "Student already in the list"
// @Router /scans [post]
func (c *ScanController) Scan(ctx *gin.Context) {
	req, ok := validatedBody[dto.ScanRequest](ctx)
	if !ok {
		return
	}

	decision, rec, err := c.scans.Scan(ctx, req.ToInput())
	respondScan(ctx, decision, rec, err)
}

// ScanText parses OCR text and reconciles the result
// @Summary Submit OCR text of an ID card
// @Description Extracts the name and 7-digit student number from raw card text, then reconciles it like a scan.
// @Tags scans
// @Accept json
// @Produce json
// @Param request body dto.ScanTextRequest true "OCR text"
// @Success 201 {object} dto.APIResponse{data=dto.ScanResponse} "Student inserted"
// @Success 200 {object} dto.APIResponse{data=dto.ScanResponse} "Existing student merged"
// @Failure 409 {object} dto.ErrorResponse "Student already in the list"
// @Failure 422 {object} dto.ErrorResponse "No ID data found in the text"
// @Router /scans/text [post]
func (c *ScanController) ScanText(ctx *gin.Context) {
	req, ok := validatedBody[dto.ScanTextRequest](ctx)
	if !ok {
		return
	}

	decision, rec, err := c.scans.ScanText(ctx, req.Text)
	respondScan(ctx, decision, rec, err)
}

func respondScan(ctx *gin.Context, decision models.Decision, rec models.StudentRecord, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	message := "Student updated"
	if decision.Action == models.ActionInsert {
		status = http.StatusCreated
		message = "Student added"
	}

	ctx.JSON(status, dto.NewSuccessResponse(dto.ScanResponse{
		Action: decision.Action,
		Record: rec,
	}, message))
}
