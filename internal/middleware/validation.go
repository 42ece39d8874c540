package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/pkg/validation"
)

// BindJSON binds the request body into obj and writes a 400 response on failure.
// It reports whether the handler should continue.
func BindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var errorDetail *dto.ErrorDetail
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, validation.FormatFieldError(fe)).
			WithField(fe.Field())
	} else {
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid request format").
			WithDetails(err.Error())
	}

	requestLogger(c).Warn().Err(err).Msg("Invalid request payload")
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	return false
}
