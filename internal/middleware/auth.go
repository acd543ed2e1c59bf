package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"iconsherald/internal/auth"
	"iconsherald/internal/logger"
	"iconsherald/internal/models"
	"iconsherald/pkg/apperrors"
	"iconsherald/pkg/contextkeys"
)

// Gin context keys used by handlers.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// AuthMiddleware validates the bearer token and threads the caller's
// identity, role and any impersonation grant through the request context.
func AuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.RoleKey, claims.Role)

		if claims.ImpersonatedBy != "" {
			grant := auth.ImpersonationGrant{
				AdminID:  claims.ImpersonatedBy,
				TargetID: claims.UserID,
			}
			if claims.ExpiresAt != nil {
				grant.ExpiresAt = claims.ExpiresAt.Time
			}
			if grant.Expired(time.Now()) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Impersonation grant expired"})
				return
			}
			ctx = context.WithValue(ctx, contextkeys.ImpersonationKey, grant)
			logger.CtxInfo(ctx, "impersonated request", "admin_id", grant.AdminID)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles gates a route group to the listed roles. Everyone else
// receives the uniform "Access restricted" error.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(CtxRole)
		if !exists {
			abortRestricted(c)
			return
		}
		role, ok := roleVal.(models.UserRole)
		if !ok {
			abortRestricted(c)
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		abortRestricted(c)
	}
}

// RequireAdmin admits admin and super_admin.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin, models.UserRoleSuperAdmin)
}

// RequireSuperAdmin admits super_admin only (audit log, system settings,
// impersonation, role changes).
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRoles(models.UserRoleSuperAdmin)
}

func abortRestricted(c *gin.Context) {
	appErr := apperrors.ErrAccessRestricted
	c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
}
