package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

// ctxViewer extracts the authenticated identity injected by the Auth and
// ResolveRole middleware. The email proves the middleware chain ran; the role
// is the live registry resolution for this request.
func ctxViewer(c echo.Context) (ports.Viewer, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return ports.Viewer{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get("role").(domain.Role)
	if !role.Valid() {
		role = domain.RoleUser
	}

	return ports.Viewer{Email: email, Role: role}, nil
}
