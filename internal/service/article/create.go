package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/internal/textindex"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 1. Create
// ---------------------------------------------------------------------------

// Create runs the full text pipeline on the submitted content and stores
// the resulting article. The caller becomes the uploader; a private upload
// stays invisible to everyone else.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Normalize input before validation.
	input.Title = strings.TrimSpace(input.Title)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Segment and index
	article, err := s.build(userID, input)
	if err != nil {
		return nil, err
	}

	// Step 3: Store
	created, err := s.articles.Create(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("store article: %w", err)
	}

	s.log.InfoContext(ctx, "article created",
		slog.String("article_id", created.ID.String()),
		slog.String("lang", created.Lang.String()),
		slog.Int("tokens", len(created.Words)))

	return created, nil
}

// build runs segmentation and indexing on input.Content and assembles the
// article. Content is stored exactly as submitted; concatenating Words
// must reproduce it, so nothing here may trim or rewrite the text.
func (s *Service) build(userID uuid.UUID, input CreateInput) (*domain.Article, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	words, err := s.seg.Segment(input.Content, input.Lang)
	if err != nil {
		return nil, fmt.Errorf("segment content: %w", err)
	}

	idx := textindex.Build(words, s.cfg.PageSize)

	return &domain.Article{
		ID:            uuid.New(),
		Title:         input.Title,
		Author:        input.Author,
		Content:       input.Content,
		ContentLength: utf8.RuneCountInString(input.Content),
		Words:         words,
		Sentences:     idx.Sentences,
		UniqueWords:   idx.UniqueWords,
		Pages:         idx.Pages,
		CreatedAt:     time.Now().UTC(),
		IsSystem:      !input.IsPrivate,
		UploaderID:    userID,
		Lang:          input.Lang,
		Tags:          input.Tags,
	}, nil
}
