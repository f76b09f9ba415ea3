package article

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 3. Get
// ---------------------------------------------------------------------------

// Get returns one article with its full index. A private upload is visible
// only to its uploader; everyone else gets not-found, never forbidden, so
// the response does not confirm the article exists.
func (s *Service) Get(ctx context.Context, articleID uuid.UUID) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if !article.IsSystem && article.UploaderID != userID {
		return nil, domain.ErrNotFound
	}

	return article, nil
}
