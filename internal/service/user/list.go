package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// ListResult is one page of the user directory plus the total user count.
type ListResult struct {
	Users []domain.SimpleUser
	Total int
}

// List returns the user directory. Only the public projection leaves this
// service; password and token hashes never do.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := clampLimit(input.Limit, 1, 200, 50)

	users, total, err := s.users.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}

	return &ListResult{Users: users, Total: total}, nil
}
