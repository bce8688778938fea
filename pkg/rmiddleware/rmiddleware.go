package rmiddleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/uxchapter/skillboard/internal/middleware"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware gates a route group to callers whose profile role matches
// one of requiredRoles. The role is read from the users table, not from the
// token: the DB is the source of truth for authorization.
func RoleMiddleware(db *gorm.DB, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		var role string
		if err := db.Table("users").Select("role").Where("id = ? AND deleted_at IS NULL", userID).Scan(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User role not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user role"})
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(role, requiredRole) {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Forbidden",
				"message":   "You don't have permission to access this resource",
				"required":  requiredRoles,
				"user_role": role,
			})
			return
		}

		c.Set("user_role", role)
		c.Next()
	}
}

// LeaderMiddleware is a convenience middleware for leader-only access
func LeaderMiddleware(db *gorm.DB) gin.HandlerFunc {
	return RoleMiddleware(db, "leader")
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return RoleMiddleware(db, "admin")
}

// LeaderOrHeadChapterMiddleware grants access to leaders and head chapters
func LeaderOrHeadChapterMiddleware(db *gorm.DB) gin.HandlerFunc {
	return RoleMiddleware(db, "leader", "head_chapter")
}
