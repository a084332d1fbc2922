package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/idscan/internal/app/models/dto"
	"github.com/yigit/idscan/internal/pkg/apperrors"
	"github.com/yigit/idscan/internal/pkg/logger"
)

// HandleAPIError maps service errors to a status code and an error envelope.
// The user-facing message carried by a CustomError is passed through.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	c.JSON(status, dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	})
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	var details map[string]interface{}
	if errors.As(err, &custom) {
		details = custom.Details
	}

	withDetails := func(d *dto.ErrorDetail) *dto.ErrorDetail {
		if len(details) > 0 {
			d.WithDetails(details)
		}
		return d
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, withDetails(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.Message(err)))
	case errors.Is(err, apperrors.ErrStudentAlreadyExists):
		return http.StatusConflict, withDetails(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, apperrors.ErrStudentAlreadyExists.Error()).
			WithField("studentNumber").
			WithSeverity(dto.ErrorSeverityWarning))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.Message(err))
	case errors.Is(err, apperrors.ErrNoIDMatch):
		return http.StatusUnprocessableEntity, dto.NewErrorDetail(dto.ErrorCodeNoMatch, apperrors.ErrNoIDMatch.Error()).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrUploadInProgress):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, "An upload is already in progress")
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, apperrors.Message(err))
	case errors.Is(err, apperrors.ErrUploadFailed):
		return http.StatusBadGateway, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, apperrors.ErrUploadFailed.Error())
	case errors.Is(err, apperrors.ErrStorage):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeStorageError, "Failed to save student list").
			WithSeverity(dto.ErrorSeverityCritical)
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, apperrors.Message(err))
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
