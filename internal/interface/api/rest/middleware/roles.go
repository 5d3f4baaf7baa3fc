package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAnyRole passes when the caller holds at least one of roles.
// No X-Roles header at all means the gateway never authenticated the
// caller: that is a 401, not a 403.
func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ri := IdentityFrom(c)
		if !ri.RolesPresent {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing identity"},
			)
			return
		}

		for _, role := range roles {
			if ri.HasRole(role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(
			http.StatusForbidden,
			gin.H{"error": "requires role " + strings.Join(roles, " OR ")},
		)
	}
}

// RequireAllRoles passes only when the caller holds every one of roles.
func RequireAllRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ri := IdentityFrom(c)
		if !ri.RolesPresent {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing identity"},
			)
			return
		}

		for _, role := range roles {
			if !ri.HasRole(role) {
				c.AbortWithStatusJSON(
					http.StatusForbidden,
					gin.H{"error": "requires role " + strings.Join(roles, " AND ")},
				)
				return
			}
		}

		c.Next()
	}
}
