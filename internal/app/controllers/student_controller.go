package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/idscan/internal/app/models/dto"
	"github.com/yigit/idscan/internal/app/services"
	"github.com/yigit/idscan/internal/middleware"
	"github.com/yigit/idscan/internal/pkg/apperrors"
	"github.com/yigit/idscan/internal/pkg/helpers"
)

// StudentController handles the captured student list
type StudentController struct {
	store  *services.StudentStore
	export *services.ExportService
}

// NewStudentController creates a new StudentController
func NewStudentController(store *services.StudentStore, export *services.ExportService) *StudentController {
	return &StudentController{
		store:  store,
		export: export,
	}
}

// ListStudents returns one page of the list, optionally filtered
// @Summary List captured students
// @Description Returns the captured students in capture order. search filters by name, student number, or program, ignoring case.
// @Tags students
// @Produce json
// @Param search query string false "Substring to match"
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	records, total := c.store.Search(ctx.Query("search"), page, size)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StudentListResponse{
		Students:   records,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, ""))
}

// GetStudent returns one record
// @Summary Get a captured student
// @Tags students
// @Produce json
// @Param id path string true "Record identifier"
// @Success 200 {object} dto.APIResponse{data=models.StudentRecord} "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	rec, err := c.store.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rec, ""))
}

// CreateStudent handles the manual entry form
// @Summary Add a student manually
// @Description Adds a record from the manual form. Any existing student number is rejected, whatever the name.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student details"
// @Success 201 {object} dto.APIResponse{data=models.StudentRecord} "Student added"
// @Failure 400 {object} dto.ErrorResponse "Name or student number missing"
// @Failure 409 {object} dto.ErrorResponse "Student number already in the list"
// @Failure 500 {object} dto.ErrorResponse "List could not be saved"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	req, ok := validatedBody[dto.StudentRequest](ctx)
	if !ok {
		return
	}

	rec, err := c.store.Add(ctx, req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(rec, "Student added"))
}

// UpdateStudent handles edit-save
// @Summary Edit a captured student
// @Description Rebuilds the record from the submitted fields, keeping its identifier and refreshing its timestamp.
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Record identifier"
// @Param request body dto.StudentRequest true "Student details"
// @Success 200 {object} dto.APIResponse{data=models.StudentRecord} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Name or student number missing"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student number held by another record"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	req, ok := validatedBody[dto.StudentRequest](ctx)
	if !ok {
		return
	}

	rec, err := c.store.Update(ctx, ctx.Param("id"), req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rec, "Student updated"))
}

// DeleteStudent removes one record; unknown identifiers are ignored
// @Summary Delete a captured student
// @Tags students
// @Param id path string true "Record identifier"
// @Success 204 "Student deleted or already absent"
// @Failure 500 {object} dto.ErrorResponse "List could not be saved"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if _, err := c.store.Remove(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ClearStudents empties the list
// @Summary Clear the list
// @Description Removes every captured student. This cannot be undone.
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ClearResponse} "List cleared"
// @Failure 500 {object} dto.ErrorResponse "List could not be saved"
// @Router /students [delete]
func (c *StudentController) ClearStudents(ctx *gin.Context) {
	removed, err := c.store.Clear(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ClearResponse{Removed: removed}, "List cleared"))
}

// ExportCSV downloads the list as CSV
// @Summary Export the list as CSV
// @Description Header row then one row per record in capture order. Fields are not quoted unless export.quote is enabled.
// @Tags students
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /students/export [get]
func (c *StudentController) ExportCSV(ctx *gin.Context) {
	filename := strings.ReplaceAll(c.export.Filename(), `"`, "")
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, c.export.ContentType()+"; charset=utf-8", []byte(c.export.CSV()))
}

// validatedBody fetches the body stored by middleware.ValidateRequest and
// answers 400 itself when the route was registered without it.
func validatedBody[T any](ctx *gin.Context) (T, bool) {
	body, ok := middleware.ValidatedBody[T](ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrBadRequest, "Request body is missing or invalid"))
	}
	return body, ok
}
