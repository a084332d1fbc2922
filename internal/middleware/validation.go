package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/idscan/internal/app/models/dto"
)

const validatedBodyKey = "validatedBody"

var validate = validator.New()

// ValidateRequest binds the JSON body into a fresh T, checks its binding and
// validate tags, and stores it for the handler. Invalid bodies are answered
// with 400 and the chain is aborted.
func ValidateRequest[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
				return
			}
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
				WithDetails(err.Error())
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := validate.Struct(body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}

		c.Set(validatedBodyKey, body)
		c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateRequest
func ValidatedBody[T any](c *gin.Context) (T, bool) {
	v, ok := c.Get(validatedBodyKey)
	if !ok {
		var zero T
		return zero, false
	}
	body, ok := v.(T)
	return body, ok
}
