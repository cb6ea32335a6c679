package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

type stubAccountService struct {
	signInResult *ports.SignInResult
	signInErr    error

	setRoleErr  error
	removeErr   error
	updatedWith [2]string
}

func (s *stubAccountService) SignIn(context.Context, string) (*ports.SignInResult, error) {
	return s.signInResult, s.signInErr
}

func (s *stubAccountService) UpdateProfile(_ context.Context, _, house, discordID string) error {
	s.updatedWith = [2]string{house, discordID}
	return nil
}

func (s *stubAccountService) SetRole(context.Context, ports.Viewer, string, domain.Role) error {
	return s.setRoleErr
}

func (s *stubAccountService) RemoveUser(context.Context, ports.Viewer, string) error {
	return s.removeErr
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestGoogleSignIn_ReturnsTokenAndRole(t *testing.T) {
	svc := &stubAccountService{signInResult: &ports.SignInResult{
		Token:   "jwt-token",
		Profile: &domain.UserProfile{Email: "a@example.com", DisplayName: "A"},
		Role:    domain.RoleUser,
	}}
	h := NewAuthHandler(svc)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{"id_token":"tok"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GoogleSignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "jwt-token") {
		t.Errorf("response missing token: %s", rec.Body.String())
	}
}

func TestGoogleSignIn_MissingToken(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GoogleSignIn(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGoogleSignIn_InvalidTokenSurfaces(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{signInErr: domain.ErrInvalidIDToken})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{"id_token":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GoogleSignIn(c); !errors.Is(err, domain.ErrInvalidIDToken) {
		t.Fatalf("expected ErrInvalidIDToken to pass through, got %v", err)
	}
}
