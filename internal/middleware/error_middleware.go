package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

// errorMapping translates an error kind into a status and an error code
type errorMapping struct {
	kind    error
	status  int
	code    dto.ErrorCode
	message string
}

// checked in order; the first kind the error matches wins
var errorMappings = []errorMapping{
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},
	{apperrors.ErrPartialFanout, http.StatusInternalServerError, dto.ErrorCodeAssignmentFailed, "Task assignment failed"},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var ce *apperrors.CustomError
	hasCustom := errors.As(err, &ce)

	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}

		detail := dto.NewErrorDetail(m.code, m.message)
		if m.status < http.StatusInternalServerError {
			// client errors carry the specific message
			detail.Message = err.Error()
			if hasCustom && ce.Field != "" {
				detail = detail.WithField(ce.Field)
			}
		} else {
			requestLogger(c).Error().Err(err).Msg("Request failed")
		}
		c.AbortWithStatusJSON(m.status, dto.NewErrorResponse(detail))
		return
	}

	if errors.Is(err, apperrors.ErrPersistence) {
		requestLogger(c).Error().Err(err).Bool("transient", apperrors.IsTransient(err)).Msg("Store failure")
		if apperrors.IsTransient(err) {
			detail := dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "Service temporarily unavailable, please retry")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(detail))
			return
		}
		detail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
		return
	}

	requestLogger(c).Error().Err(err).Msg("Unhandled error")
	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
}
