package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lingreader-backend/internal/auth"
	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// Refresh exchanges an expired (or still-valid) access token plus the
// matching refresh token for a new access token. The access token only
// has to decode under our key; its expiry is ignored. Claims are
// re-derived from the user's current stored state, so profile changes
// become visible here. The refresh token itself is not rotated: the same
// value keeps working until the next login replaces it.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Decode the presented access token, ignoring expiry
	claims, err := s.jwt.DecodeExpired(input.Token)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh decode token: %w", err)
	}

	// Step 3: Load the user named by the token
	user, err := s.users.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Deleted user: nothing stored can match the presented value.
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", claims.ID.String()))
			return nil, domain.ErrRefreshMismatch
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Step 4: Compare refresh token hashes
	if user.RefreshTokenHash == nil || *user.RefreshTokenHash != auth.HashToken(input.RefreshToken) {
		s.log.WarnContext(ctx, "refresh token mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrRefreshMismatch
	}

	// Step 5: Mint a new access token from current user state
	accessToken, err := s.jwt.Issue(user.Claims())
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue access token: %w", err)
	}

	return &AuthResult{
		AccessToken: accessToken,
		User:        user,
	}, nil
}
