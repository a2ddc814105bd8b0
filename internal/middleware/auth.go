package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/services"
	"github.com/propease/propease-api/pkg/logger"
)

// TokenParser validates an access token and returns its claims
type TokenParser interface {
	ParseToken(tokenString string) (*services.Claims, error)
}

// ProjectAccessChecker decides whether an actor may work on a project
type ProjectAccessChecker interface {
	CanAccessProject(ctx context.Context, actor services.Actor, projectID uint) (bool, error)
}

// Auth returns a middleware that validates JWT tokens
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""

		if authHeader == "" {
			// Download links carry the token as a query param
			tokenString = c.Query("token")
			if tokenString == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Authorization header is required",
				})
				return
			}
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid authorization header format",
				})
				return
			}
			tokenString = parts[1]
		}

		claims, err := parser.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get("userID")
	if !exists {
		return 0
	}
	return userID.(uint)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("userRole")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == models.RoleAdmin
}

// GetActor builds the service actor for the authenticated request
func GetActor(c *gin.Context) services.Actor {
	return services.Actor{
		UserID:    GetUserID(c),
		Role:      GetUserRole(c),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// RequireAdmin returns a middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireRole returns a middleware that requires specific roles
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := GetUserRole(c)
		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "You do not have access to this section",
		})
	}
}

// RequireProjectAccess lets admins through and limits employees to the
// projects assigned to them. The project is read from the project_id param.
func RequireProjectAccess(checker ProjectAccessChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
			return
		}

		ok, err := checker.CanAccessProject(c.Request.Context(), GetActor(c), uint(projectID))
		if err != nil {
			logger.Error("project access check failed", "project_id", projectID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

// RequireAdminOrSelf allows admins and the user named by the user_id param
func RequireAdminOrSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAdmin(c) {
			c.Next()
			return
		}
		targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
		if err == nil && uint(targetID) == GetUserID(c) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "You do not have access to this section",
		})
	}
}
