package article

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingreader-backend/internal/config"
	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/internal/fetch"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type articleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	Find(ctx context.Context, filter domain.ArticleFilter) ([]domain.SimpleArticle, int, error)
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
}

type segmenter interface {
	Segment(text string, lang domain.Language) ([]string, error)
}

type pageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.Extract, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the article pipeline and library operations.
type Service struct {
	log      *slog.Logger
	articles articleRepo
	seg      segmenter
	fetcher  pageFetcher
	cfg      config.TextConfig
}

// NewService creates a new article service.
func NewService(
	logger *slog.Logger,
	articles articleRepo,
	seg segmenter,
	fetcher pageFetcher,
	cfg config.TextConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "article"),
		articles: articles,
		seg:      seg,
		fetcher:  fetcher,
		cfg:      cfg,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
