package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
)

// RoleResolver derives the caller's effective role from the live registry.
// Resolution happens per request so promotions and demotions apply without
// re-authentication.
type RoleResolver func(email string) domain.Role

// ResolveRole derives the caller's role from the authenticated email and
// injects it into context for downstream handlers.
func ResolveRole(resolve RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			c.Set("role", resolve(email))
			return next(c)
		}
	}
}

// RBAC enforces role-based access control on routes that must not even be
// reachable for lesser roles. Most lifecycle guards live in the services
// (silent no-ops); this is the outer fence for admin-only surfaces.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
