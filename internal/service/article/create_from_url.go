package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 2. CreateFromURL
// ---------------------------------------------------------------------------

// CreateFromURL downloads the page at input.URL, extracts its readable
// article and runs it through the same pipeline as a direct upload. A page
// that cannot be fetched or yields no readable text is reported as a
// validation failure on the url field; transport details go to the log only.
func (s *Service) CreateFromURL(ctx context.Context, input FetchInput) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Download and extract readable content
	extract, err := s.fetcher.Fetch(ctx, input.URL)
	if err != nil {
		s.log.WarnContext(ctx, "article fetch failed",
			slog.String("url", input.URL),
			slog.String("error", err.Error()))
		return nil, domain.NewValidationError("url", "no readable article at this address")
	}

	title := extract.Title
	if title == "" {
		title = input.URL
	}
	var author *string
	if extract.Byline != "" {
		author = &extract.Byline
	}

	// Step 3: Segment and index the extracted text
	article, err := s.build(userID, CreateInput{
		Title:     title,
		Author:    author,
		Content:   extract.TextContent,
		Lang:      input.Lang,
		IsPrivate: input.IsPrivate,
		Tags:      input.Tags,
	})
	if err != nil {
		return nil, err
	}

	// Step 4: Store
	created, err := s.articles.Create(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("store imported article: %w", err)
	}

	s.log.InfoContext(ctx, "article imported",
		slog.String("article_id", created.ID.String()),
		slog.String("url", input.URL))

	return created, nil
}
