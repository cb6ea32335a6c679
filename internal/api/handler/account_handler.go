package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/api/metrics"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/service"
)

type AccountHandler struct {
	accounts  ports.AccountService
	dashboard *service.DashboardService
	logger    zerolog.Logger
}

func NewAccountHandler(accounts ports.AccountService, dashboard *service.DashboardService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, dashboard: dashboard, logger: logger}
}

type setRoleRequest struct {
	Role domain.Role `json:"role" validate:"required,oneof=user admin"`
}

type updateProfileRequest struct {
	House     string `json:"house"`
	DiscordID string `json:"discord_id"`
}

type meResponse struct {
	Profile *domain.UserProfile `json:"profile"`
	Role    domain.Role         `json:"role"`
}

// ListUsers returns the registry snapshot, most recent sign-in first.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Users())
}

// SetRole assigns a new role to a user. Role-change failures follow the same
// best-effort posture as lifecycle transitions, except the protected-identity
// refusal, which is surfaced.
func (h *AccountHandler) SetRole(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	target := c.Param("email")
	if err := h.accounts.SetRole(c.Request().Context(), viewer, target, req.Role); err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues(string(req.Role)).Inc()
	return c.NoContent(http.StatusNoContent)
}

// RemoveUser deletes a profile from the registry.
func (h *AccountHandler) RemoveUser(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	if err := h.accounts.RemoveUser(c.Request().Context(), viewer, c.Param("email")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the viewer's stored profile and live effective role.
func (h *AccountHandler) Me(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		Profile: h.dashboard.Profile(viewer.Email),
		Role:    h.dashboard.ResolveRole(viewer.Email),
	})
}

// UpdateMe updates the viewer's own optional profile fields.
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.accounts.UpdateProfile(c.Request().Context(), viewer.Email, req.House, req.DiscordID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
