// Package auth adapts the external Google sign-in provider.
package auth

import (
	"context"
	"fmt"

	verifier "github.com/futurenda/google-auth-id-token-verifier"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

// GoogleVerifier validates Google ID tokens against the configured OAuth
// client id and extracts the identity claims the account service needs.
type GoogleVerifier struct {
	clientID string
	v        *verifier.Verifier
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID, v: &verifier.Verifier{}}
}

// Verify checks the token's signature and audience and returns the identity.
func (g *GoogleVerifier) Verify(_ context.Context, idToken string) (*ports.GoogleIdentity, error) {
	if err := g.v.VerifyIDToken(idToken, []string{g.clientID}); err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	claims, err := verifier.Decode(idToken)
	if err != nil {
		return nil, fmt.Errorf("decode id token: %w", err)
	}

	return &ports.GoogleIdentity{
		Email:       claims.Email,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
	}, nil
}
