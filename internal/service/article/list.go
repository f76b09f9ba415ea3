package article

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 4. List
// ---------------------------------------------------------------------------

// List returns a page of the shared library together with the total match
// count. Private uploads never appear here, not even the caller's own.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ArticleFilter{
		Lang:       input.Lang,
		Search:     normalizeSearch(input.Search),
		SystemOnly: true,
		Limit:      clampLimit(input.Limit, 1, 100, 20),
		Offset:     input.Offset,
	}

	articles, total, err := s.articles.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &ListResult{Articles: articles, Total: total}, nil
}

// ---------------------------------------------------------------------------
// 5. ListByUser
// ---------------------------------------------------------------------------

// ListByUser returns one uploader's articles. Without an explicit target
// it lists the caller's own uploads, private ones included; targeting
// another user shows only what they shared into the library.
func (s *Service) ListByUser(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	target := userID
	if input.UserID != nil {
		target = *input.UserID
	}

	filter := domain.ArticleFilter{
		Lang:       input.Lang,
		Search:     normalizeSearch(input.Search),
		UploaderID: &target,
		SystemOnly: target != userID,
		Limit:      clampLimit(input.Limit, 1, 100, 20),
		Offset:     input.Offset,
	}

	articles, total, err := s.articles.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list user articles: %w", err)
	}

	return &ListResult{Articles: articles, Total: total}, nil
}

// normalizeSearch trims the search term; empty terms disable the filter.
func normalizeSearch(search *string) *string {
	if search == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*search)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
