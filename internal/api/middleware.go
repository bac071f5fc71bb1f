package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/site"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
)

// RequireAdmin ensures the authenticated user is an administrator.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}

// maintenanceExempt lists path prefixes that keep working while the site is
// disabled. Login and site control must stay reachable so an admin can turn
// the site back on.
var maintenanceExempt = []string{
	"/v1/auth/login",
	"/v1/admin/site",
}

// Maintenance rejects requests with 503 while the site availability flag is
// off. The flag lives in the database and is consulted through the injected
// service rather than a process-wide global.
func Maintenance(siteService site.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range maintenanceExempt {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if !siteService.IsActive(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"message": "website under maintenance",
			})
			return
		}

		c.Next()
	}
}
