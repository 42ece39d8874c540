package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

// parseUUIDParam parses a uuid path parameter and writes a 400 response if it is malformed
func parseUUIDParam(ctx *gin.Context, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(paramName))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(paramName, paramName+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// optionalQuery returns a pointer to the query value, or nil when the key is absent or empty
func optionalQuery(ctx *gin.Context, key string) *string {
	v, ok := ctx.GetQuery(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}
