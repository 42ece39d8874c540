package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextKeyPrincipalID = "principalID"
	ContextKeyRoleType    = "roleType"
	ContextKeyName        = "principalName"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Authentication required").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeTokenNotFound, "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		id, err := claims.PrincipalID()
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token subject")
			return
		}

		c.Set(ContextKeyPrincipalID, id)
		c.Set(ContextKeyRoleType, models.RoleType(claims.RoleType))
		c.Set(ContextKeyName, claims.Name)

		c.Next()
	}
}

// RoleRequired middleware to check if the caller has one of the allowed roles
func (m *AuthMiddleware) RoleRequired(allowed ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "User role not found")
			return
		}

		for _, role := range allowed {
			if p.Role == role {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// GetPrincipal returns the authenticated caller stored by JWTAuth
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	id, ok := c.Get(ContextKeyPrincipalID)
	if !ok {
		return auth.Principal{}, false
	}
	role, ok := c.Get(ContextKeyRoleType)
	if !ok {
		return auth.Principal{}, false
	}

	p := auth.Principal{Name: c.GetString(ContextKeyName)}
	if p.ID, ok = id.(uuid.UUID); !ok {
		return auth.Principal{}, false
	}
	if p.Role, ok = role.(models.RoleType); !ok {
		return auth.Principal{}, false
	}
	return p, true
}
