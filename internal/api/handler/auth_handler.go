package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/api/metrics"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

type AuthHandler struct {
	accounts ports.AccountService
}

func NewAuthHandler(accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type googleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type signInResponse struct {
	Token string              `json:"token"`
	User  *domain.UserProfile `json:"user"`
	Role  domain.Role         `json:"role"`
}

// GoogleSignIn exchanges a verified Google ID token for a session JWT,
// syncing the profile record as a side effect.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req googleSignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.accounts.SignIn(c.Request().Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidIDToken):
			metrics.SignInsTotal.WithLabelValues("invalid_token").Inc()
		case errors.Is(err, domain.ErrDomainNotAllowed):
			metrics.SignInsTotal.WithLabelValues("domain_refused").Inc()
		default:
			metrics.SignInsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SignInsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, signInResponse{Token: res.Token, User: res.Profile, Role: res.Role})
}
