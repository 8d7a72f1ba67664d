package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// HasRole checks role membership in user_roles. Unknown users and
// query failures both answer false.
func HasRole(db *gorm.DB, userID string, roles ...string) bool {
	if userID == "" || len(roles) == 0 {
		return false
	}

	var count int64
	if err := db.
		Model(&models.UserRole{}).
		Where("user_id = ? AND role IN ?", userID, roles).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// RequireRole runs after AuthMiddleware and rejects callers that hold
// none of the given roles. Superadmin passes every check.
func RequireRole(db *gorm.DB, roles ...string) gin.HandlerFunc {
	allowed := append([]string{models.RoleSuperadmin}, roles...)

	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)

		if !HasRole(db, userID, allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}

		c.Next()
	}
}
